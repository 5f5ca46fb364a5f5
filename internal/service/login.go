package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agiletchat/auth-service/internal/model"
	"github.com/agiletchat/auth-service/internal/password"
	"github.com/agiletchat/auth-service/internal/repository"
	"github.com/agiletchat/auth-service/internal/token"
	"github.com/agiletchat/auth-service/internal/validate"
	"go.uber.org/zap"
)

type loginResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

func (service *AuthService) HandleLogin(w http.ResponseWriter, req *http.Request) {
	/* Парсим запрос */
	payload := &validate.LoginRequest{}
	if err := json.NewDecoder(req.Body).Decode(payload); err != nil {
		service.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		service.logger.Error("Bad request", zap.Error(err), zap.String("ip", req.RemoteAddr))
		return
	}

	if errs := service.validate.Login(payload); len(errs) > 0 {
		service.writeValidationErrors(w, errs)
		return
	}

	/* Несуществующий email и неверный пароль дают байт-в-байт одинаковый
	 * ответ, чтобы по нему нельзя было перебирать аккаунты. */
	user, err := service.userRepo.GetByEmail(req.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			service.writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		service.writeInternalError(w)
		service.logger.Error("SQL error", zap.Error(err), zap.String("ip", req.RemoteAddr))
		return
	}

	match, err := password.Verify(payload.Password, user.PasswordHash)
	if err != nil {
		/* Нечитаемый хэш в базе — это сломанная конфигурация, а не 401 */
		service.writeInternalError(w)
		service.logger.Error("Stored password hash is unreadable", zap.Error(err),
			zap.String("user_id", user.ID))
		return
	}
	if !match {
		service.writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signedToken, err := token.Issue(service.cfg.Secret, token.Claims{
		UserID: user.ID,
		Email:  user.Email,
	}, service.cfg.TokenLifetime())
	if err != nil {
		service.writeInternalError(w)
		service.logger.Error("Failed to generate token", zap.Error(err),
			zap.String("ip", req.RemoteAddr), zap.String("user_id", user.ID))
		return
	}

	service.logger.Debug("User logged in", zap.String("user_id", user.ID))
	service.writeJSON(w, http.StatusOK, loginResponse{
		Token: signedToken,
		User:  user.Public(),
	})
}
