package services

import (
	"context"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apiclient"
)

type EventService interface {
	List(ctx context.Context, filter dto.EventFilter) (*models.EventList, error)
}

type EventServiceImpl struct {
	api Backend
}

func NewEventService(api Backend) EventService {
	return &EventServiceImpl{api: api}
}

// List - журнал процессов. Если таблицы events нет, Hint всегда заполнен.
func (s *EventServiceImpl) List(ctx context.Context, filter dto.EventFilter) (*models.EventList, error) {
	start := time.Now()
	list, err := s.api.ListEvents(ctx, apiclient.EventListParams{
		Type:    strings.TrimSpace(filter.Type),
		ActorID: strings.TrimSpace(filter.ActorID),
		Limit:   dto.EventsPageLimit,
	})
	if err != nil {
		logger.PageLog("events", 0, time.Since(start), err)
		return nil, apiError(err, "event")
	}
	logger.PageLog("events", len(list.Items), time.Since(start), nil)

	if list.EventsSetupRequired && list.Hint == "" {
		list.Hint = dto.EventsSetupHint
	}
	return list, nil
}
