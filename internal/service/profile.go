package service

import (
	"errors"
	"net/http"

	"github.com/agiletchat/auth-service/internal/repository"
	"go.uber.org/zap"
)

func (service *AuthService) HandleProfile(w http.ResponseWriter, req *http.Request) {
	claims, ok := ClaimsFromContext(req.Context())
	if !ok {
		/* Сюда можно попасть только если забыли повесить Authenticate */
		service.writeMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := service.userRepo.GetByID(req.Context(), claims.UserID)
	if err != nil {
		/* Пользователь мог исчезнуть после выдачи токена,
		 * например при удалении строки руками в базе. */
		if errors.Is(err, repository.ErrNotFound) {
			service.writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		service.writeInternalError(w)
		service.logger.Error("SQL error", zap.Error(err), zap.String("user_id", claims.UserID))
		return
	}

	service.writeJSON(w, http.StatusOK, map[string]interface{}{"user": user.Profile()})
}
