package dto

import "asimos_admin/internal/models"

// =========================================================================
// Карта
// =========================================================================

// TopAreasLimit - размер рейтинга районов.
const TopAreasLimit = 10

// UnknownArea - район вакансии без адреса.
const UnknownArea = "Naməlum"

// Центр по умолчанию, если на карте нет ни одного маркера (Баку).
const (
	DefaultMapLat = 40.4093
	DefaultMapLng = 49.8671
)

// MapMarker - вакансия с координатами.
type MapMarker struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Wage      string  `json:"wage"`
	Address   string  `json:"address"`
	IsDaily   bool    `json:"isDaily"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	CreatedAt string  `json:"createdAt"`
}

// AreaCount - район и число вакансий в нём.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// MapView - данные страницы карты для выбранной категории.
type MapView struct {
	Category    string
	Categories  []string
	TotalJobs   int
	Markers     []MapMarker
	HeatPoints  [][3]float64
	TopAreas    []AreaCount
	Center      [2]float64
	ShowMarkers bool
	ShowHeat    bool
}

// MapFilter - состояние страницы карты в query string.
type MapFilter struct {
	Category string `form:"category"`
	Markers  string `form:"markers"`
	Heat     string `form:"heat"`
}

// ShowMarkers - слой маркеров включён, пока его явно не выключили.
func (f MapFilter) ShowMarkers() bool { return f.Markers != "0" }

func (f MapFilter) ShowHeat() bool { return f.Heat != "0" }

// =========================================================================
// Геокодер
// =========================================================================

// Центр и масштаб выбора точки, пока точка не выбрана (Азербайджан).
const (
	PickerDefaultLat  = 40.5
	PickerDefaultLng  = 47.5
	PickerDefaultZoom = 7
	PickerPointZoom   = 15
)

// PickerView - начальное состояние карты выбора точки.
type PickerView struct {
	HasPoint bool
	Lat      float64
	Lng      float64
	Zoom     int
}

// NewPickerView: точка выбрана, только если обе координаты - конечные числа
// и они не равны нулю одновременно.
func NewPickerView(lat, lng string) PickerView {
	la, ln := models.ParseCoordinate(lat), models.ParseCoordinate(lng)
	if la.Valid && ln.Valid && (la.Value != 0 || ln.Value != 0) {
		return PickerView{HasPoint: true, Lat: la.Value, Lng: ln.Value, Zoom: PickerPointZoom}
	}
	return PickerView{Lat: PickerDefaultLat, Lng: PickerDefaultLng, Zoom: PickerDefaultZoom}
}

// DefaultGeocodeArea - подпись результата без города и региона.
const DefaultGeocodeArea = "Azərbaycan"

// GeocodeResult - найденный адрес для выбора точки на карте.
type GeocodeResult struct {
	PlaceID     models.ID         `json:"place_id"`
	DisplayName string            `json:"display_name"`
	Lat         models.Coordinate `json:"lat"`
	Lng         models.Coordinate `json:"lng"`
	Area        string            `json:"area"`
}
