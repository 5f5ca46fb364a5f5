package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/agiletchat/auth-service/internal/token"
	"go.uber.org/zap"
)

type contextKey int

const claimsKey contextKey = iota

func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

/* Authenticate закрывает защищённые ручки: достаёт bearer токен из
 * заголовка Authorization, проверяет подпись и срок годности и кладёт
 * claims в контекст запроса. */
func (service *AuthService) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		raw, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
		if !found || raw == "" {
			service.writeMessage(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := token.Verify(service.cfg.Secret, raw)
		if err != nil {
			service.writeMessage(w, http.StatusForbidden, "Invalid token")
			service.logger.Debug("Token rejected", zap.Error(err), zap.String("ip", req.RemoteAddr))
			return
		}

		next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), claimsKey, claims)))
	})
}
