package services

import (
	"context"
	"strings"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apperrors"
)

type ContentService interface {
	Load(ctx context.Context, slug string) (*models.ContentPage, error)
	Save(ctx context.Context, form *dto.ContentForm) error
}

type ContentServiceImpl struct {
	api       Backend
	validator *validator.Validator
}

func NewContentService(api Backend, v *validator.Validator) ContentService {
	return &ContentServiceImpl{api: api, validator: v}
}

// Load - страница по слагу. Пустой слаг - первая из редактируемых страниц,
// отсутствующая на бэкенде страница - пустая форма.
func (s *ContentServiceImpl) Load(ctx context.Context, slug string) (*models.ContentPage, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = models.ContentSlugs[0]
	}
	if !models.IsContentSlug(slug) {
		return nil, apperrors.ErrUnknownContentSlug(slug)
	}
	page, err := s.api.GetContent(ctx, slug)
	if err != nil {
		return nil, apiError(err, "content")
	}
	return page, nil
}

func (s *ContentServiceImpl) Save(ctx context.Context, form *dto.ContentForm) error {
	form.Slug = strings.TrimSpace(form.Slug)
	if form.Slug != "" && !models.IsContentSlug(form.Slug) {
		return apperrors.ErrUnknownContentSlug(form.Slug)
	}
	if err := validateForm(s.validator, form, "content"); err != nil {
		return err
	}
	if err := s.api.SaveContent(ctx, form.Slug, models.ContentInput{Title: form.Title, Body: form.Body}); err != nil {
		return apiError(err, "content")
	}
	logger.CtxInfo(ctx, "content saved", "slug", form.Slug)
	return nil
}
