package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - поля токена администратора, которые показывает админка.
// Подпись не проверяется: токен выпускает и проверяет бэкенд.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenInfo - результат разбора токена.
type TokenInfo struct {
	Token     string
	IsJWT     bool
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time // нулевое значение - без срока
}

// Expired - срок истёк к моменту now. Непрозрачные токены не истекают.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// Inspect разбирает токен без проверки подписи. Токен, не являющийся JWT,
// считается непрозрачным и бессрочным.
func Inspect(token string) TokenInfo {
	token = strings.TrimSpace(token)
	info := TokenInfo{Token: token}
	if token == "" || strings.Count(token, ".") != 2 {
		return info
	}

	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return info
	}

	info.IsJWT = true
	info.Subject = claims.Subject
	if info.Subject == "" {
		info.Subject = claims.UserID
	}
	info.Email = claims.Email
	info.Role = claims.Role
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}

// Usable - токен есть и не просрочен.
func Usable(token string, now time.Time) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	return !Inspect(token).Expired(now)
}
