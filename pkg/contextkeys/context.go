package contextkeys

// Ключи значений, которые middleware консоли кладёт в gin.Context.
const (
	// AdminTokenKey - токен администратора из cookie (string).
	AdminTokenKey = "admin_token"
	// AdminInfoKey - разобранный токен (auth.TokenInfo).
	AdminInfoKey = "admin_info"
	// RequestIDKey - id запроса, тот же, что в заголовке X-Request-ID.
	RequestIDKey = "request_id"
)
