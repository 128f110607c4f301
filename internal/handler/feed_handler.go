package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marsad/backend/internal/service"
)

// FeedHandler serves the composed page-level feeds that have no
// parameters: home, about, aid-efforts and the data overview.
type FeedHandler struct {
	home     service.HomeService
	about    service.AboutService
	aid      service.AidService
	overview service.OverviewService
}

func NewFeedHandler(
	home service.HomeService,
	about service.AboutService,
	aid service.AidService,
	overview service.OverviewService,
) *FeedHandler {
	return &FeedHandler{home: home, about: about, aid: aid, overview: overview}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/feeds/home", h.GetHome)
	g.GET("/feeds/about", h.GetAbout)
	g.GET("/feeds/aid-efforts", h.GetAidEfforts)
	g.GET("/feeds/data-overview", h.GetOverview)
}

// GetHome returns the composed home feed.
// @Summary Home feed
// @Description Ordered home page sections with bilingual content
// @Tags feeds
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /feeds/home [get]
func (h *FeedHandler) GetHome(c echo.Context) error {
	payload, err := h.home.GetHome(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetAbout returns the about page feed.
// @Summary About feed
// @Description About page translations and timeline
// @Tags feeds
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /feeds/about [get]
func (h *FeedHandler) GetAbout(c echo.Context) error {
	payload, err := h.about.GetAbout(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetAidEfforts returns aid organizations and initiatives.
// @Summary Aid efforts feed
// @Description Active aid organizations and initiatives with categories
// @Tags feeds
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /feeds/aid-efforts [get]
func (h *FeedHandler) GetAidEfforts(c echo.Context) error {
	payload, err := h.aid.GetAidEfforts(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetOverview returns archive-wide content counts.
// @Summary Data overview feed
// @Description Active row counts per content type
// @Tags feeds
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /feeds/data-overview [get]
func (h *FeedHandler) GetOverview(c echo.Context) error {
	payload, err := h.overview.GetOverview(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}
