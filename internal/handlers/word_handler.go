// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"net/http"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/service"
	"wordnote/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// wordIDParam は URL の word_id を取り出します。空ならエラーを書いて false
func wordIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	wordID := chi.URLParam(r, "word_id")
	if wordID == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "word_idが指定されていません。", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, middleware.GetLogger(r.Context()), appErr)
		return "", false
	}
	return wordID, true
}

// PostWord は新しい単語リソースを作成するためのハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostWord")

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}

	var req model.PostWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PostWord(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error posting word in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", "word_id", word.WordID)
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は単語リソースの一覧を取得するためのハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWords")

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.GetWords(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing words in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", "count", len(words))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は特定の単語リソースを取得するためのハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWord")

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r)
	if !ok {
		return
	}

	word, err := h.service.GetWord(r.Context(), tenantID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found in service", "word_id", wordID)
		} else {
			logger.Error("Error getting word from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PutWord は特定の単語リソースを完全に置き換えるためのハンドラ
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PutWord")

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r)
	if !ok {
		return
	}

	var req model.PutWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PutWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		logger.Error("Error putting word in service", "error", err, "word_id", wordID)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word put successfully", "word_id", wordID)
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PatchWord は特定の単語リソースの一部を更新するためのハンドラ
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PatchWord")

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r)
	if !ok {
		return
	}

	var req model.PatchWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PatchWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		logger.Error("Error patching word in service", "error", err, "word_id", wordID)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word patched successfully", "word_id", wordID)
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// DeleteWord は特定の単語リソースを削除するためのハンドラ
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteWord")

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), tenantID, wordID); err != nil {
		logger.Error("Error deleting word in service", "error", err, "word_id", wordID)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully", "word_id", wordID)
	w.WriteHeader(http.StatusNoContent)
}
