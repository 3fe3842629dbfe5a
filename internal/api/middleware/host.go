package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	hostIDKey    contextKey = "host_id"
	requestIDKey contextKey = "request_id"
)

// HostScope кладет в контекст идентификатор хоста из конфигурации
// Сервис однопользовательский, аутентификации нет
func HostScope(hostID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithHostID(r.Context(), hostID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithHostID возвращает контекст с идентификатором хоста
func WithHostID(ctx context.Context, hostID int64) context.Context {
	return context.WithValue(ctx, hostIDKey, hostID)
}

// GetHostID извлекает идентификатор хоста из контекста
func GetHostID(ctx context.Context) (int64, bool) {
	hostID, ok := ctx.Value(hostIDKey).(int64)
	return hostID, ok && hostID > 0
}
