package views

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// FlashCookie - короткоживущая cookie с тостами, переживающая редирект.
const FlashCookie = "asimos_flash"

// ToastTTL - через сколько миллисекунд браузер прячет тост.
const ToastTTL = 3000

type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast - всплывающее уведомление.
type Toast struct {
	ID      string    `json:"id"`
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}

// Flash добавляет тост, который покажет следующая отрисованная страница.
func Flash(c *gin.Context, kind ToastKind, message string) {
	toasts := append(readFlash(c), Toast{ID: uuid.NewString(), Kind: kind, Message: message})
	raw, err := json.Marshal(toasts)
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(raw)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, value, 60, "/", "", false, true)
	// следующий Flash в этом же запросе должен увидеть уже добавленные тосты
	c.Set(FlashCookie, toasts)
}

// PopFlash возвращает накопленные тосты и удаляет cookie.
func PopFlash(c *gin.Context) []Toast {
	toasts := readFlash(c)
	if len(toasts) > 0 {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(FlashCookie, "", -1, "/", "", false, true)
	}
	return toasts
}

func readFlash(c *gin.Context) []Toast {
	if v, ok := c.Get(FlashCookie); ok {
		if toasts, ok := v.([]Toast); ok {
			return toasts
		}
	}
	value, err := c.Cookie(FlashCookie)
	if err != nil || value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var toasts []Toast
	if err := json.Unmarshal(raw, &toasts); err != nil {
		return nil
	}
	return toasts
}
