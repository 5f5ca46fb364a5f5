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

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

func (service *AuthService) HandleRegister(w http.ResponseWriter, req *http.Request) {
	/* Парсим запрос */
	payload := &validate.RegisterRequest{}
	if err := json.NewDecoder(req.Body).Decode(payload); err != nil {
		service.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		service.logger.Error("Bad request", zap.Error(err), zap.String("ip", req.RemoteAddr))
		return
	}

	/* Валидируем и нормализуем payload до любой работы с базой */
	if errs := service.validate.Registration(payload); len(errs) > 0 {
		service.writeValidationErrors(w, errs)
		return
	}

	/* Предварительная проверка email ради понятного сообщения.
	 * От гонки check-then-insert защищает уникальный индекс в базе. */
	if _, err := service.userRepo.GetByEmail(req.Context(), payload.Email); err == nil {
		service.writeMessage(w, http.StatusBadRequest, "Email already exists")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		service.writeInternalError(w)
		service.logger.Error("SQL error", zap.Error(err), zap.String("ip", req.RemoteAddr))
		return
	}

	/* Генерируем bcrypt хэш пароля: plaintext в базу не попадает никогда */
	passwordHash, err := password.Hash(payload.Password)
	if err != nil {
		service.writeInternalError(w)
		service.logger.Error("Failed to generate bcrypt hash", zap.Error(err),
			zap.String("ip", req.RemoteAddr))
		return
	}

	user, err := service.userRepo.Create(req.Context(), &model.User{
		Email:        payload.Email,
		PasswordHash: passwordHash,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			service.writeMessage(w, http.StatusBadRequest, "Email already exists")
			return
		}
		service.writeInternalError(w)
		service.logger.Error("Failed to insert user", zap.Error(err),
			zap.String("ip", req.RemoteAddr), zap.String("email", payload.Email))
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

	service.logger.Debug("New user registered", zap.String("user_id", user.ID))
	service.writeJSON(w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
		Token:   signedToken,
	})
}
