package service

import (
	"encoding/json"
	"net/http"

	"github.com/agiletchat/auth-service/config"
	"github.com/agiletchat/auth-service/internal/repository"
	"github.com/agiletchat/auth-service/internal/validate"
	"go.uber.org/zap"
)

type AuthService struct {
	logger   *zap.Logger
	cfg      *config.Config
	userRepo repository.UserRepository
	validate *validate.Validator
}

func NewAuthService(logger *zap.Logger, cfg *config.Config, userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		logger:   logger,
		cfg:      cfg,
		userRepo: userRepo,
		validate: validate.New(),
	}
}

func (service *AuthService) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		service.logger.Error("JSON failure", zap.Error(err))
	}
}

func (service *AuthService) writeMessage(w http.ResponseWriter, status int, message string) {
	service.writeJSON(w, status, map[string]string{"message": message})
}

/* Детали внутренних ошибок остаются в логах,
 * клиент получает одинаковый ответ. */
func (service *AuthService) writeInternalError(w http.ResponseWriter) {
	service.writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

func (service *AuthService) writeValidationErrors(w http.ResponseWriter, errs []validate.FieldError) {
	service.writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
}
