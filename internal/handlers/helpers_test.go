package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wordnote/internal/config"
	"wordnote/internal/handlers"
	"wordnote/internal/model"
	"wordnote/internal/repository"
	"wordnote/internal/service/mocks"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testServer はサービスをモックにしたルーター一式
type testServer struct {
	router    http.Handler
	auth      *mocks.AuthService
	word      *mocks.WordService
	list      *mocks.ListService
	flashcard *mocks.FlashcardService
	reminder  *mocks.ReminderService
}

// newTestServer は X-Tenant-ID ヘッダーで認証する開発モードのルーターを作ります
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := repository.NewDB(fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString()), testLogger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	cfg.Auth.Enabled = false

	s := &testServer{
		auth:      mocks.NewAuthService(t),
		word:      mocks.NewWordService(t),
		list:      mocks.NewListService(t),
		flashcard: mocks.NewFlashcardService(t),
		reminder:  mocks.NewReminderService(t),
	}
	s.router = handlers.NewRouter(cfg, testLogger, handlers.Handlers{
		Auth:      handlers.NewAuthHandler(s.auth),
		Word:      handlers.NewWordHandler(s.word),
		List:      handlers.NewListHandler(s.list),
		Flashcard: handlers.NewFlashcardHandler(s.flashcard),
		Reminder:  handlers.NewReminderHandler(s.reminder),
		Health:    handlers.NewHealthHandler(db),
	})
	return s
}

// do はリクエストを送ってレコーダーを返します。body が string ならそのまま送ります
func (s *testServer) do(t *testing.T, method, path string, tenantID *uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != nil {
		req.Header.Set("X-Tenant-ID", tenantID.String())
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// errorCode はエラーレスポンスの code を返します
func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error.Code
}
