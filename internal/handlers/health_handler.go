package handlers

import (
	"context"
	"net/http"
	"time"

	"wordnote/internal/config"
	"wordnote/internal/middleware"
	"wordnote/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はDBに ping して稼働状況を返します
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	status := map[string]string{"status": "ok", "version": config.AppVersion}

	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error("Health check failed", "error", err)
		status["status"] = "unavailable"
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, status, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, status, logger)
}
