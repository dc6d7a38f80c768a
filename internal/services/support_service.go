package services

import (
	"context"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apperrors"
)

type SupportService interface {
	List(ctx context.Context) ([]models.SupportTicket, error)
	Get(ctx context.Context, id string) (*models.SupportTicket, error)
	Reply(ctx context.Context, id string, form *dto.ReplyForm) error
}

type SupportServiceImpl struct {
	api       Backend
	validator *validator.Validator
}

func NewSupportService(api Backend, v *validator.Validator) SupportService {
	return &SupportServiceImpl{api: api, validator: v}
}

func (s *SupportServiceImpl) List(ctx context.Context) ([]models.SupportTicket, error) {
	start := time.Now()
	tickets, err := s.api.ListTickets(ctx)
	logger.PageLog("support", len(tickets), time.Since(start), err)
	return tickets, apiError(err, "support")
}

func (s *SupportServiceImpl) Get(ctx context.Context, id string) (*models.SupportTicket, error) {
	ticket, err := s.api.GetTicket(ctx, id)
	if err != nil {
		return nil, apiError(err, "support")
	}
	return ticket, nil
}

// Reply отправляет ответ администратора; пустой ответ не отправляется.
func (s *SupportServiceImpl) Reply(ctx context.Context, id string, form *dto.ReplyForm) error {
	if err := validateForm(s.validator, form, "support"); err != nil {
		return apperrors.ErrEmptyReply()
	}
	if err := s.api.ReplyTicket(ctx, id, form.Message); err != nil {
		return apiError(err, "support")
	}
	logger.CtxInfo(ctx, "support ticket replied", "ticket_id", id)
	return nil
}
