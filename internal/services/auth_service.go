package services

import (
	"context"
	"errors"
	"time"

	"asimos_admin/internal/auth"
	"asimos_admin/internal/logger"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
	Inspect(token string) auth.TokenInfo
	Usable(token string) bool
}

type AuthServiceImpl struct {
	api       Backend
	validator *validator.Validator
	now       func() time.Time
}

func NewAuthService(api Backend, v *validator.Validator) AuthService {
	return &AuthServiceImpl{api: api, validator: v, now: time.Now}
}

// Login - вход администратора. Email приводится к нижнему регистру,
// пароль обрезается по краям. Возвращает токен бэкенда.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	if err := validateForm(s.validator, req, "auth"); err != nil {
		return "", err
	}

	token, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apiclient.ErrTokenNotReturned) {
			return "", apperrors.ErrTokenNotReturned(err)
		}
		return "", apiError(err, "auth")
	}

	info := auth.Inspect(token)
	logger.CtxInfo(ctx, "admin logged in", "jwt", info.IsJWT, "subject", info.Subject)
	return token, nil
}

func (s *AuthServiceImpl) Inspect(token string) auth.TokenInfo {
	return auth.Inspect(token)
}

// Usable - токен непустой и (для JWT) не просрочен.
func (s *AuthServiceImpl) Usable(token string) bool {
	return auth.Usable(token, s.now())
}
