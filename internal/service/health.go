package service

import (
	"net/http"

	"go.uber.org/zap"
)

func (service *AuthService) HandleHealth(w http.ResponseWriter, req *http.Request) {
	if err := service.userRepo.Ping(req.Context()); err != nil {
		service.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		service.logger.Error("Database ping failed", zap.Error(err))
		return
	}
	service.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
