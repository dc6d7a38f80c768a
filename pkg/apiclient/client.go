// Package apiclient - типизированный клиент REST API бэкенда Asimos.
//
// Каждый запрос берёт актуальный токен у TokenSource (или из контекста,
// см. ContextWithToken) и отправляет его как Bearer.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"asimos_admin/internal/logger"

	"github.com/goccy/go-json"
	"github.com/google/go-querystring/query"
)

const (
	DefaultBaseURL = "https://asimos-backend.onrender.com"
	DefaultTimeout = 20 * time.Second

	defaultMaxRetries   = 2
	defaultRetryBackoff = 200 * time.Millisecond
	maxErrorBodySize    = 64 << 10
)

// TokenSource отдаёт текущий токен администратора. Пустая строка - токена нет.
type TokenSource interface {
	Token() string
}

// TokenFunc адаптирует функцию к TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// StaticToken - неизменяемый токен (тесты, одноразовые команды).
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// RequestEditorFn вызывается перед отправкой каждого запроса.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type ctxTokenKey struct{}

// ContextWithToken задаёт токен для запросов с этим контекстом. Он имеет
// приоритет над TokenSource клиента; пустая строка означает "без токена".
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxTokenKey{}).(string)
	return token, ok
}

// Client - клиент API. Безопасен для конкурентного использования.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	tokens       TokenSource
	editors      []RequestEditorFn
	maxRetries   int
	retryBackoff time.Duration
	userAgent    string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithRequestEditor(fn RequestEditorFn) Option {
	return func(c *Client) { c.editors = append(c.editors, fn) }
}

// WithRetries задаёт число повторов GET-запросов при сетевых ошибках и 502/503/504.
func WithRetries(n int, backoff time.Duration) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
		if backoff > 0 {
			c.retryBackoff = backoff
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New создаёт клиент. Пустой baseURL заменяется на DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("apiclient: invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("apiclient: base url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:      u,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		tokens:       StaticToken(""),
		maxRetries:   defaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
		userAgent:    "asimos-admin",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL возвращает адрес API без завершающего слэша.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) token(ctx context.Context) string {
	if token, ok := tokenFromContext(ctx); ok {
		return token
	}
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) endpoint(path string, params any) (string, error) {
	escaped := strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("apiclient: invalid path %q: %w", path, err)
	}
	u := *c.baseURL
	u.Path, u.RawPath = unescaped, escaped
	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return "", fmt.Errorf("apiclient: encode query for %s: %w", path, err)
		}
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}

// do выполняет запрос и декодирует JSON-ответ в out (если out != nil).
func (c *Client) do(ctx context.Context, method, path string, params, body, out any) error {
	endpoint, err := c.endpoint(path, params)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: encode %s %s body: %w", method, path, err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			logger.CtxWarn(ctx, "retrying api request", "method", method, "path", path, "attempt", attempt+1, "error", lastErr)
			select {
			case <-ctx.Done():
				return fmt.Errorf("apiclient: %s %s: %w", method, path, ctx.Err())
			case <-time.After(time.Duration(attempt) * c.retryBackoff):
			}
		}

		retry, err := c.send(ctx, method, path, endpoint, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, method, path, endpoint string, payload []byte, out any) (bool, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return false, fmt.Errorf("apiclient: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return false, fmt.Errorf("apiclient: edit %s %s: %w", method, path, err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.CtxDebug(ctx, "api request failed", "method", method, "path", path, "duration", time.Since(start), "error", err)
		if ctx.Err() != nil {
			return false, fmt.Errorf("apiclient: %s %s: %w", method, path, ctx.Err())
		}
		return true, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.CtxDebug(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		apiErr := newAPIError(method, path, resp.StatusCode, raw)
		return isRetryableStatus(resp.StatusCode), apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("apiclient: read %s %s response: %w", method, path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("apiclient: decode %s %s response: %w", method, path, err)
	}
	return false, nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// escape кодирует идентификатор для подстановки в путь.
func escape(id string) string {
	return url.PathEscape(id)
}

// errEmptyID возвращается методами, которым передан пустой идентификатор.
var errEmptyID = errors.New("apiclient: empty id")
