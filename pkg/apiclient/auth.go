package apiclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"asimos_admin/internal/models"
)

// ErrTokenNotReturned - бэкенд ответил 2xx, но без токена.
var ErrTokenNotReturned = errors.New("Token not returned")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// NormalizeCredentials убирает невидимые пробелы и приводит email к нижнему регистру.
func NormalizeCredentials(email, password string) (string, string) {
	return strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(password)
}

// Login - POST /admin/login. Возвращает токен администратора.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	email, password = NormalizeCredentials(email, password)
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrTokenNotReturned
	}
	return resp.Token, nil
}

// RegisterEmployer - POST /auth/register с ролью employer. Возвращает id профиля
// (может быть пустым, если бэкенд его не прислал).
func (c *Client) RegisterEmployer(ctx context.Context, in models.EmployerRegistration) (models.ID, error) {
	in.Role = models.UserRoleEmployer
	var resp models.RegistrationResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, in, &resp); err != nil {
		return "", err
	}
	return resp.Profile.ID, nil
}
