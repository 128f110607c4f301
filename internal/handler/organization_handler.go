package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marsad/backend/internal/service"
)

type OrganizationHandler struct {
	service service.OrganizationService
}

func NewOrganizationHandler(service service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/organizations/:slug", h.GetBySlug)
}

// GetBySlug returns one aid organization with related organizations.
// @Summary Organization detail
// @Description One organization plus related organizations by type or shared category
// @Tags organizations
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errorResponse
// @Router /organizations/{slug} [get]
func (h *OrganizationHandler) GetBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid slug"})
	}

	payload, err := h.service.GetDetail(c.Request().Context(), slug)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}
