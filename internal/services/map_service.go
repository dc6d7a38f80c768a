package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apiclient"

	"golang.org/x/sync/errgroup"
)

type MapService interface {
	Overview(ctx context.Context, filter dto.MapFilter) (*dto.MapView, error)
}

type MapServiceImpl struct {
	api Backend
}

func NewMapService(api Backend) MapService {
	return &MapServiceImpl{api: api}
}

// Overview параллельно грузит все вакансии и публичные категории и строит
// слои карты для выбранной категории.
func (s *MapServiceImpl) Overview(ctx context.Context, filter dto.MapFilter) (*dto.MapView, error) {
	start := time.Now()
	var (
		jobs       []models.Job
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.api.ListAllJobs(gctx, "", apiclient.MapJobPages)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.api.ListPublicCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.PageLog("map", 0, time.Since(start), err)
		return nil, apiError(err, "map")
	}

	view := BuildMapView(jobs, filter.Category)
	view.Categories = CategoryNames(categories)
	view.ShowMarkers = filter.ShowMarkers()
	view.ShowHeat = filter.ShowHeat()
	logger.PageLog("map", len(view.Markers), time.Since(start), nil)
	return view, nil
}

// FilterJobsByCategory оставляет вакансии, у которых категория без пробелов
// по краям равна category. Пустая category - без фильтра.
func FilterJobsByCategory(jobs []models.Job, category string) []models.Job {
	if category == "" {
		return jobs
	}
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.CategoryKey() == category {
			out = append(out, j)
		}
	}
	return out
}

// BuildMapView считает маркеры, точки тепловой карты, top районов и центр.
// Вакансии без координат в слои не попадают, но участвуют в подсчёте районов.
func BuildMapView(jobs []models.Job, category string) *dto.MapView {
	filtered := FilterJobsByCategory(jobs, category)
	view := &dto.MapView{
		Category:   category,
		TotalJobs:  len(jobs),
		Markers:    make([]dto.MapMarker, 0, len(filtered)),
		HeatPoints: make([][3]float64, 0, len(filtered)),
		TopAreas:   TopAreas(filtered, dto.TopAreasLimit),
		Center:     [2]float64{dto.DefaultMapLat, dto.DefaultMapLng},
	}

	for _, j := range filtered {
		if !j.HasLocation() {
			continue
		}
		lat, lng := j.LocationLat.Value, j.LocationLng.Value
		view.HeatPoints = append(view.HeatPoints, [3]float64{lat, lng, 1})
		view.Markers = append(view.Markers, dto.MapMarker{
			ID:        j.ID.String(),
			Title:     j.Title,
			Category:  j.Category,
			Wage:      j.Wage.String(),
			Address:   j.LocationAddress,
			IsDaily:   j.IsDaily,
			Lat:       lat,
			Lng:       lng,
			CreatedAt: j.CreatedAt,
		})
	}
	if len(view.Markers) > 0 {
		view.Center = [2]float64{view.Markers[0].Lat, view.Markers[0].Lng}
	}
	return view
}

// ParseArea сводит адрес к "район, город": два последних сегмента через
// запятую, без названия страны.
func ParseArea(address string) string {
	var parts []string
	for _, p := range strings.Split(address, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return dto.UnknownArea
	}

	withoutCountry := make([]string, 0, len(parts))
	for _, p := range parts {
		lower := strings.ToLower(p)
		if lower != "azerbaycan" && lower != "azerbaijan" {
			withoutCountry = append(withoutCountry, p)
		}
	}
	if len(withoutCountry) > 0 {
		parts = withoutCountry
	}

	if n := len(parts); n >= 2 {
		return parts[n-2] + ", " + parts[n-1]
	}
	return parts[len(parts)-1]
}

// TopAreas - районы по числу вакансий, по убыванию; при равенстве
// сохраняется порядок первого появления.
func TopAreas(jobs []models.Job, limit int) []dto.AreaCount {
	counts := make(map[string]int)
	var order []string
	for _, j := range jobs {
		area := ParseArea(j.LocationAddress)
		if _, ok := counts[area]; !ok {
			order = append(order, area)
		}
		counts[area]++
	}

	areas := make([]dto.AreaCount, 0, len(order))
	for _, a := range order {
		areas = append(areas, dto.AreaCount{Area: a, Count: counts[a]})
	}
	sort.SliceStable(areas, func(i, k int) bool { return areas[i].Count > areas[k].Count })
	if limit > 0 && len(areas) > limit {
		areas = areas[:limit]
	}
	return areas
}
