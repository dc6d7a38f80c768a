package services

import (
	"context"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"
)

// userLookupLimit - сколько пользователей грузится для поиска по id
// и выбора работодателя.
const userLookupLimit = 500

type UserService interface {
	List(ctx context.Context, filter dto.UserFilter) ([]models.Profile, error)
	Update(ctx context.Context, id string, form *dto.UserForm) error
	SetStatus(ctx context.Context, id string, form *dto.UserStatusForm) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Profile, error)
}

type UserServiceImpl struct {
	api       Backend
	validator *validator.Validator
}

func NewUserService(api Backend, v *validator.Validator) UserService {
	return &UserServiceImpl{api: api, validator: v}
}

func (s *UserServiceImpl) List(ctx context.Context, filter dto.UserFilter) ([]models.Profile, error) {
	if err := validateForm(s.validator, &filter, "user"); err != nil {
		return nil, err
	}
	start := time.Now()
	users, err := s.api.ListUsers(ctx, apiclient.UserListParams{
		Query: strings.TrimSpace(filter.Query),
		Role:  models.UserRole(filter.Role),
		Limit: dto.UsersPageLimit,
	})
	logger.PageLog("users", len(users), time.Since(start), err)
	return users, apiError(err, "user")
}

func (s *UserServiceImpl) Update(ctx context.Context, id string, form *dto.UserForm) error {
	if err := validateForm(s.validator, form, "user"); err != nil {
		return err
	}
	if err := s.api.UpdateUser(ctx, id, form.Patch()); err != nil {
		return apiError(err, "user")
	}
	logger.CtxInfo(ctx, "user updated", "user_id", id)
	return nil
}

func (s *UserServiceImpl) SetStatus(ctx context.Context, id string, form *dto.UserStatusForm) error {
	if err := validateForm(s.validator, form, "user"); err != nil {
		return err
	}
	if err := s.api.SetUserStatus(ctx, id, models.UserStatus(form.Status)); err != nil {
		return apiError(err, "user")
	}
	logger.CtxInfo(ctx, "user status changed", "user_id", id, "status", form.Status)
	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return apiError(err, "user")
	}
	logger.CtxInfo(ctx, "user deleted", "user_id", id)
	return nil
}

// Get - профиль по id. Отдельного эндпоинта у API нет, поэтому ищем в
// общем списке.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (*models.Profile, error) {
	users, err := lookupUsers(ctx, s.api)
	if err != nil {
		return nil, apiError(err, "user")
	}
	for i := range users {
		if users[i].ID.String() == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound(id)
}

func lookupUsers(ctx context.Context, api Backend) ([]models.Profile, error) {
	return api.ListUsers(ctx, apiclient.UserListParams{Limit: userLookupLimit})
}

// FilterEmployers - пользователи с ролью employer (без учёта регистра).

func FilterEmployers(users []models.Profile) []models.Profile {
	employers := make([]models.Profile, 0, len(users))
	for _, u := range users {
		if u.IsEmployer() {
			employers = append(employers, u)
		}
	}
	return employers
}
