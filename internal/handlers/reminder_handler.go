package handlers

import (
	"net/http"
	"strconv"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/service"
	"wordnote/internal/webutil"
)

const maxNextTriggers = 50

type ReminderHandler struct {
	service service.ReminderService
}

func NewReminderHandler(s service.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: s}
}

func (h *ReminderHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	resp, err := h.service.GetSettings(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ReminderHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	var req model.ReminderSettingsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	resp, err := h.service.PutSettings(r.Context(), tenantID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// NextTriggers は ?n= 件 (省略時はサービスのデフォルト) の通知予定を返します
func (h *ReminderHandler) NextTriggers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxNextTriggers {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "nは1から50の整数で指定してください。", "n", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		n = v
	}
	resp, err := h.service.NextTriggers(r.Context(), tenantID, n)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
