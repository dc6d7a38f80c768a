package helpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"asimos_admin/internal/app"
	"asimos_admin/internal/auth"
	"asimos_admin/internal/config"
	"asimos_admin/internal/logger"
)

// TestServer - консоль поверх фейкового бэкенда.
type TestServer struct {
	Server  *httptest.Server
	Backend *FakeBackend
	Config  *config.Config

	client *http.Client
}

// Response - ответ консоли с прочитанным телом.
type Response struct {
	*http.Response
	Body string
}

// Location - адрес редиректа.
func (r *Response) Location() string {
	return r.Header.Get("Location")
}

// Cookie возвращает cookie ответа по имени.
func (r *Response) Cookie(name string) *http.Cookie {
	for _, c := range r.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// NewTestServer поднимает консоль, направленную на новый FakeBackend.
// Оба сервера закрываются в t.Cleanup.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	logger.InitWithWriter("test", io.Discard, "error")

	fb := NewFakeBackend(t)

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.API.BaseURL = fb.URL()
	cfg.API.Retries = 0
	cfg.Geocoder.URL = fb.URL() + "/search"

	client, err := app.NewAPIClient(cfg)
	if err != nil {
		t.Fatalf("Failed to create API client: %v", err)
	}
	router, err := app.SetupRouter(cfg, client)
	if err != nil {
		t.Fatalf("Failed to setup router: %v", err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestServer{
		Server:  srv,
		Backend: fb,
		Config:  cfg,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SendRequest отправляет запрос в консоль. token кладётся в cookie, form
// (для POST) кодируется как application/x-www-form-urlencoded.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, form url.Values, cookies ...*http.Cookie) *Response {
	t.Helper()
	return ts.send(t, method, path, "", token, form, cookies...)
}

func (ts *TestServer) send(t *testing.T, method, path, referer, token string, form url.Values, cookies ...*http.Cookie) *Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, ts.Server.URL+path, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if referer != "" {
		req.Header.Set("Referer", ts.Server.URL+referer)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return &Response{Response: resp, Body: string(raw)}
}

// Get - GET с токеном администратора.
func (ts *TestServer) Get(t *testing.T, path string) *Response {
	t.Helper()
	return ts.SendRequest(t, http.MethodGet, path, ts.Backend.Token, nil)
}

// Post - POST формы с токеном администратора.
func (ts *TestServer) Post(t *testing.T, path string, form url.Values) *Response {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return ts.SendRequest(t, http.MethodPost, path, ts.Backend.Token, form)
}

// PostFrom - POST формы, отправленной со страницы referer консоли.
func (ts *TestServer) PostFrom(t *testing.T, path, referer string, form url.Values) *Response {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return ts.send(t, http.MethodPost, path, referer, ts.Backend.Token, form)
}

// Login проходит форму входа и возвращает токен из cookie.
func (ts *TestServer) Login(t *testing.T) string {
	t.Helper()
	resp := ts.SendRequest(t, http.MethodPost, "/login", "", url.Values{
		"email":    {AdminEmail},
		"password": {AdminPassword},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login failed: status %d", resp.StatusCode)
	}
	c := resp.Cookie(auth.CookieName)
	if c == nil || c.Value == "" {
		t.Fatalf("login did not set %s cookie", auth.CookieName)
	}
	return c.Value
}

// FlashFrom возвращает cookie тоста из ответа (для следующего запроса).
func FlashFrom(t *testing.T, resp *Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "asimos_flash" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("response has no flash cookie")
	return nil
}
