package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wordnote/internal/model"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		s := newTestServer(t)
		req := model.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "password123"}
		s.auth.On("RegisterTenant", mock.Anything, &req).
			Return(&model.Tenant{TenantID: uuid.New(), Name: "alice", Email: "alice@example.com", PasswordHash: "hash", IsActive: true, CreatedAt: time.Now()}, nil).Once()

		rr := s.do(t, http.MethodPost, "/api/v1/auth/register", nil, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hash", "パスワードハッシュは返さない")
	})

	t.Run("パスワードが短い", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.do(t, http.MethodPost, "/api/v1/auth/register", nil, model.RegisterRequest{Name: "a", Email: "a@example.com", Password: "short"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rr))
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		s := newTestServer(t)
		req := model.LoginRequest{Email: "alice@example.com", Password: "password123"}
		s.auth.On("Login", mock.Anything, &req).
			Return(&model.LoginResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}, nil).Once()

		rr := s.do(t, http.MethodPost, "/api/v1/auth/login", nil, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"access_token":"token","token_type":"Bearer","expires_in":3600}`, rr.Body.String())
	})

	t.Run("認証失敗", func(t *testing.T) {
		s := newTestServer(t)
		req := model.LoginRequest{Email: "alice@example.com", Password: "wrong"}
		s.auth.On("Login", mock.Anything, &req).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)).Once()

		rr := s.do(t, http.MethodPost, "/api/v1/auth/login", nil, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", errorCode(t, rr))
	})
}

func TestAuthHandler_GetMe(t *testing.T) {
	tenantID := uuid.New()
	s := newTestServer(t)
	s.auth.On("GetTenant", mock.Anything, tenantID).
		Return(&model.Tenant{TenantID: tenantID, Name: "alice", Email: "alice@example.com", IsActive: true}, nil).Once()

	rr := s.do(t, http.MethodGet, "/api/v1/auth/me", &tenantID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), tenantID.String())
}
