package handlers

import (
	"net/http"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/service"
	"wordnote/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register は新規ユーザーを登録します
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	tenant, err := h.service.RegisterTenant(r.Context(), &req)
	if err != nil {
		logger.Error("Registration process failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration request successful", "tenant_id", tenant.TenantID)
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewTenantResponse(tenant), logger)
}

// Login はユーザーを認証し、JWTを返します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	loginResponse, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済み
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, loginResponse, logger)
}

// GetMe は認証済みユーザー自身の情報を返します
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}

	tenant, err := h.service.GetTenant(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewTenantResponse(tenant), logger)
}
