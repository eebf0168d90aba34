package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/service"
	"wordnote/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// sseHeartbeat はプロキシに接続を切られないためのコメント送信間隔
const sseHeartbeat = 15 * time.Second

// ListHandler は単語一覧画面の状態と操作を提供します
type ListHandler struct {
	service   service.ListService
	heartbeat time.Duration
}

func NewListHandler(s service.ListService) *ListHandler {
	return &ListHandler{service: s, heartbeat: sseHeartbeat}
}

// Routes は /api/v1/list 配下のルートを返します。SSE があるのでタイムアウト系のミドルウェアは付けないこと
func (h *ListHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetState)
	r.Get("/events", h.Events)
	r.Post("/selection/{word_id}/toggle", h.Toggle)
	r.Post("/selection/all", h.SelectAll)
	r.Delete("/selection", h.ClearSelection)
	r.Post("/search", h.StartSearching)
	r.Delete("/search", h.StopSearching)
	r.Put("/search/query", h.SetQuery)
	r.Post("/remind", h.RemindSelected)
	r.Post("/delete", h.DeleteSelected)
	r.Post("/pending/{batch_id}/restore", h.Restore)
	r.Post("/pending/{batch_id}/commit", h.Commit)
	return r
}

type stateFunc func(ctx context.Context, tenantID uuid.UUID) (model.UIState, error)

// respondState は状態を返すだけの操作をまとめて扱います
func (h *ListHandler) respondState(w http.ResponseWriter, r *http.Request, op string, fn stateFunc) {
	logger := middleware.GetLogger(r.Context()).With("handler", op)
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	state, err := fn(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

func (h *ListHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, "GetState", h.service.GetState)
}

func (h *ListHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	wordID := chi.URLParam(r, "word_id")
	h.respondState(w, r, "Toggle", func(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
		return h.service.Toggle(ctx, tenantID, wordID)
	})
}

func (h *ListHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, "SelectAll", h.service.SelectAll)
}

func (h *ListHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, "ClearSelection", h.service.ClearSelection)
}

func (h *ListHandler) StartSearching(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, "StartSearching", h.service.StartSearching)
}

func (h *ListHandler) StopSearching(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, "StopSearching", h.service.StopSearching)
}

func (h *ListHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "SetQuery")
	var req model.SetQueryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	h.respondState(w, r, "SetQuery", func(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
		return h.service.SetQuery(ctx, tenantID, req.Query)
	})
}

func (h *ListHandler) Restore(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batch_id")
	h.respondState(w, r, "Restore", func(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
		return h.service.Restore(ctx, tenantID, batchID)
	})
}

func (h *ListHandler) Commit(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batch_id")
	h.respondState(w, r, "Commit", func(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
		return h.service.Commit(ctx, tenantID, batchID)
	})
}

func (h *ListHandler) RemindSelected(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "RemindSelected")
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	resp, err := h.service.RemindSelected(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ListHandler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteSelected")
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	resp, err := h.service.DeleteSelected(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Events は UIState を Server-Sent Events で配信します。状態が変わるたびに "state" イベントを送ります
func (h *ListHandler) Events(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Events")
	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("Streaming unsupported by response writer")
		webutil.HandleError(w, logger, model.NewAppError("STREAMING_UNSUPPORTED", "ストリーミングに対応していません。", "", model.ErrInternalServer))
		return
	}

	states, stop, err := h.service.Watch(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	logger.Info("List event stream opened")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()
	for {
		select {
		case <-r.Context().Done():
			logger.Info("List event stream closed by client")
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case state, ok := <-states:
			if !ok {
				logger.Info("List event stream closed by server")
				return
			}
			data, err := json.Marshal(state)
			if err != nil {
				logger.Error("Failed to marshal list state", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: state\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
