package services_test

import (
	"context"
	"net/http"
	"testing"

	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"
	"asimos_admin/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLogin_NormalizesCredentials(t *testing.T) {
	svc, fb := newServices(t)

	token, err := svc.AuthService.Login(context.Background(), &dto.LoginRequest{
		Email:    "  Admin@Asimos.LOCAL ",
		Password: " secret\t",
	})
	require.NoError(t, err)
	assert.Equal(t, helpers.AdminToken, token)

	body := fb.LastRequest(t, http.MethodPost, "/admin/login").JSON(t)
	assert.Equal(t, map[string]any{"email": helpers.AdminEmail, "password": helpers.AdminPassword}, body)
	assert.True(t, svc.AuthService.Usable(token))
}

func TestAuthLogin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.LoginRequest
		noToken  bool
		wantMsg  string
		wantCode apperrors.ErrorCode
	}{
		{name: "blank email", req: dto.LoginRequest{Email: "  ", Password: "x"}, wantMsg: "Email daxil edin", wantCode: apperrors.CodeValidationFailed},
		{name: "blank password", req: dto.LoginRequest{Email: "a@b.az"}, wantMsg: "Şifrə daxil edin", wantCode: apperrors.CodeValidationFailed},
		{name: "wrong password", req: dto.LoginRequest{Email: helpers.AdminEmail, Password: "nope"}, wantMsg: "Invalid login credentials", wantCode: apperrors.CodeUnauthorized},
		{name: "no token in response", req: dto.LoginRequest{Email: helpers.AdminEmail, Password: helpers.AdminPassword}, noToken: true, wantMsg: "Token not returned", wantCode: apperrors.CodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fb := newServices(t)
			fb.LoginNoToken = tt.noToken

			req := tt.req
			token, err := svc.AuthService.Login(context.Background(), &req)
			require.Error(t, err)
			assert.Empty(t, token)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestAuthUsable(t *testing.T) {
	svc, _ := newServices(t)
	assert.False(t, svc.AuthService.Usable(""))
	assert.True(t, svc.AuthService.Usable("opaque-token"))
	assert.False(t, svc.AuthService.Inspect("opaque-token").IsJWT)
}
