package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marsad/backend/internal/service"
)

type TestimonyHandler struct {
	service service.TestimonyService
}

func NewTestimonyHandler(service service.TestimonyService) *TestimonyHandler {
	return &TestimonyHandler{service: service}
}

func (h *TestimonyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/testimonies", h.List)
	g.GET("/testimonies/:slug", h.GetBySlug)
}

// List returns a page of testimonies.
// @Summary List testimonies
// @Description Paginated bilingual testimonies, featured first
// @Tags testimonies
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 10, max 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /testimonies [get]
func (h *TestimonyHandler) List(c echo.Context) error {
	params := service.TestimonyListParams{
		Page:    parsePositiveQuery(c, "page", 1),
		PerPage: parsePositiveQuery(c, "per_page", 0),
	}

	payload, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetBySlug returns one testimony with related items.
// @Summary Testimony detail
// @Description One testimony plus up to five related testimonies
// @Tags testimonies
// @Produce json
// @Param slug path string true "Testimony slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errorResponse
// @Router /testimonies/{slug} [get]
func (h *TestimonyHandler) GetBySlug(c echo.Context) error {
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
