package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"

	"github.com/goccy/go-json"
	"github.com/google/go-querystring/query"
)

// Поиск ограничен Азербайджаном: код страны и прямоугольник
// (запад, юг, восток, север).
const (
	geocodeCountry = "az"
	geocodeViewbox = "44.0,38.0,51.0,42.0"
	geocodeLimit   = 6
)

type GeocodeService interface {
	Search(ctx context.Context, q string) ([]dto.GeocodeResult, error)
}

// GeocodeServiceImpl - прокси к Nominatim-совместимому геокодеру.
type GeocodeServiceImpl struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

func NewGeocodeService(endpoint, userAgent string, timeout time.Duration) GeocodeService {
	return &GeocodeServiceImpl{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type nominatimParams struct {
	Query          string `url:"q"`
	Format         string `url:"format"`
	AddressDetails int    `url:"addressdetails"`
	Limit          int    `url:"limit"`
	CountryCodes   string `url:"countrycodes"`
	Viewbox        string `url:"viewbox"`
	Bounded        int    `url:"bounded"`
}

type nominatimPlace struct {
	PlaceID     models.ID         `json:"place_id"`
	DisplayName string            `json:"display_name"`
	Lat         models.Coordinate `json:"lat"`
	Lon         models.Coordinate `json:"lon"`
	Address     struct {
		City  string `json:"city"`
		Town  string `json:"town"`
		State string `json:"state"`
	} `json:"address"`
}

func (p nominatimPlace) area() string {
	for _, v := range []string{p.Address.City, p.Address.Town, p.Address.State} {
		if v != "" {
			return v
		}
	}
	return dto.DefaultGeocodeArea
}

// Search ищет адрес. Пустой запрос и ответ геокодера не 2xx дают пустой
// список без ошибки; сетевая ошибка возвращается вместе с пустым списком.
func (s *GeocodeServiceImpl) Search(ctx context.Context, q string) ([]dto.GeocodeResult, error) {
	results := []dto.GeocodeResult{}
	q = strings.TrimSpace(q)
	if q == "" {
		return results, nil
	}

	values, err := query.Values(nominatimParams{
		Query:          q,
		Format:         "json",
		AddressDetails: 1,
		Limit:          geocodeLimit,
		CountryCodes:   geocodeCountry,
		Viewbox:        geocodeViewbox,
		Bounded:        1,
	})
	if err != nil {
		return results, fmt.Errorf("geocode: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return results, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.CtxWarn(ctx, "geocoder request failed", "error", err)
		return results, fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.CtxWarn(ctx, "geocoder returned error status", "status", resp.StatusCode)
		return results, nil
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return results, fmt.Errorf("geocode: decode response: %w", err)
	}
	for _, p := range places {
		results = append(results, dto.GeocodeResult{
			PlaceID:     p.PlaceID,
			DisplayName: p.DisplayName,
			Lat:         p.Lat,
			Lng:         p.Lon,
			Area:        p.area(),
		})
	}
	logger.CtxDebug(ctx, "geocoder search", "results", len(results), "duration", time.Since(start))
	return results, nil
}
