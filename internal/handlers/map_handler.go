package handlers

import (
	"net/http"

	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	*BaseHandler
	mapService     services.MapService
	geocodeService services.GeocodeService
}

func NewMapHandler(base *BaseHandler, mapService services.MapService, geocodeService services.GeocodeService) *MapHandler {
	return &MapHandler{
		BaseHandler:    base,
		mapService:     mapService,
		geocodeService: geocodeService,
	}
}

// MapPayload - данные слоёв для map.js (<script id="map-data">).
type MapPayload struct {
	Center      [2]float64      `json:"center"`
	Markers     []dto.MapMarker `json:"markers"`
	Heat        [][3]float64    `json:"heat"`
	ShowMarkers bool            `json:"showMarkers"`
	ShowHeat    bool            `json:"showHeat"`
}

type mapData struct {
	View    *dto.MapView
	Payload MapPayload
}

func (h *MapHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/map", h.MapPage)
	r.GET("/map/geocode", h.Geocode)
}

func (h *MapHandler) MapPage(c *gin.Context) {
	var filter dto.MapFilter
	_ = c.ShouldBindQuery(&filter)

	data := &mapData{}
	page := h.NewPage(c, "map", "Xəritə", data)

	view, err := h.mapService.Overview(c.Request.Context(), filter)
	if err != nil {
		h.RenderError(c, "map", page, err)
		return
	}
	data.View = view
	data.Payload = NewMapPayload(view)
	h.Render(c, http.StatusOK, "map", page)
}

// NewMapPayload - слои карты; пустые слои сериализуются как [], а не null.
func NewMapPayload(view *dto.MapView) MapPayload {
	p := MapPayload{
		Center:      view.Center,
		Markers:     view.Markers,
		Heat:        view.HeatPoints,
		ShowMarkers: view.ShowMarkers,
		ShowHeat:    view.ShowHeat,
	}
	if p.Markers == nil {
		p.Markers = []dto.MapMarker{}
	}
	if p.Heat == nil {
		p.Heat = [][3]float64{}
	}
	return p
}

// Geocode - прокси геокодера для выбора точки в форме вакансии.
// Ответ: {"items": [...]} или {"error": {...}}.
func (h *MapHandler) Geocode(c *gin.Context) {
	results, err := h.geocodeService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		apperrors.HandleError(c, apperrors.ExternalServiceError(err, "map", "Axtarış xətası"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": results})
}
