package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
)

// HeaderAdminID заголовок идентификации администратора
const HeaderAdminID = "X-Admin-ID"

const msgMissingAdminID = "требуется заголовок X-Admin-ID"

type contextKey string

// AdminIDKey ключ контекста с ID администратора
const AdminIDKey contextKey = "adminID"

// Auth проверяет наличие корректного X-Admin-ID в запросе
// и кладет ID администратора в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := strconv.ParseInt(r.Header.Get(HeaderAdminID), 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondForbidden(w, msgMissingAdminID)
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext возвращает ID администратора из контекста
func AdminIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AdminIDKey).(int64)
	return id, ok
}
