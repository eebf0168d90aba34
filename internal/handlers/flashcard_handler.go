package handlers

import (
	"net/http"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/service"
	"wordnote/internal/webutil"
)

type FlashcardHandler struct {
	service service.FlashcardService
}

func NewFlashcardHandler(s service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: s}
}

// GetFlashcards は今日復習するカードを返します
func (h *FlashcardHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}

	cards, err := h.service.GetFlashcards(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = []*model.FlashcardResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// SubmitResult は自己採点の結果を記録します
func (h *FlashcardHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r)
	if !ok {
		return
	}

	var req model.SubmitFlashcardRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.SubmitResult(r.Context(), tenantID, wordID, *req.IsCorrect); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
