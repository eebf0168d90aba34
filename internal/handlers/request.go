package handlers

import (
	"log/slog"
	"net/http"

	"wordnote/internal/middleware"
	"wordnote/internal/webutil"

	"github.com/google/uuid"
)

// tenantFromContext は認証ミドルウェアが入れたテナントIDを取り出します。なければエラーを書いて false
func tenantFromContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return tenantID, true
}

// decodeAndValidate はボディをデコードして検証します。失敗ならエラーを書いて false
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
