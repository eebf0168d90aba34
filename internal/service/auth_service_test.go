package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"wordnote/internal/config"
	"wordnote/internal/model"
	"wordnote/internal/repository"
	"wordnote/internal/service"
)

type captureMailer struct {
	to  []string
	err error
}

func (m *captureMailer) Send(_ context.Context, to, _, _ string) error {
	m.to = append(m.to, to)
	return m.err
}

// 関連するテストと共通のセットアップをまとめる
type AuthServiceTestSuite struct {
	suite.Suite

	db          *gorm.DB
	mailer      *captureMailer
	cfg         *config.Config
	authService service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.mailer = &captureMailer{}
	s.cfg = &config.Config{}
	s.cfg.JWT.SecretKey = "test-secret"
	s.cfg.JWT.ExpiresIn = 15 * time.Minute
	s.authService = service.NewAuthService(s.db, repository.NewGormTenantRepository(), s.mailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) register(name, email string) *model.Tenant {
	tenant, err := s.authService.RegisterTenant(context.Background(), &model.RegisterRequest{
		Name: name, Email: email, Password: "password123",
	})
	s.Require().NoError(err)
	return tenant
}

func (s *AuthServiceTestSuite) TestRegisterTenant() {
	tenant := s.register("alice", "alice@example.com")

	s.NotEqual(uuid.Nil, tenant.TenantID)
	s.True(tenant.IsActive)
	s.NotEqual("password123", tenant.PasswordHash)
	s.Equal([]string{"alice@example.com"}, s.mailer.to)

	testCases := []struct {
		name     string
		req      *model.RegisterRequest
		wantCode string
	}{
		{"メールアドレスが重複", &model.RegisterRequest{Name: "bob", Email: "alice@example.com", Password: "password123"}, "DUPLICATE_EMAIL"},
		{"名前が重複", &model.RegisterRequest{Name: "alice", Email: "other@example.com", Password: "password123"}, "DUPLICATE_NAME"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.authService.RegisterTenant(context.Background(), tc.req)
			var appErr *model.AppError
			s.Require().ErrorAs(err, &appErr)
			s.Equal(tc.wantCode, appErr.Code)
			s.ErrorIs(err, model.ErrConflict)
		})
	}
}

func (s *AuthServiceTestSuite) TestRegisterTenant_MailFailureDoesNotFail() {
	s.mailer.err = errors.New("smtp down")
	tenant := s.register("carol", "carol@example.com")
	s.NotNil(tenant)
}

func (s *AuthServiceTestSuite) TestLogin() {
	tenant := s.register("dave", "dave@example.com")

	resp, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "dave@example.com", Password: "password123"})
	s.Require().NoError(err)
	s.Equal("Bearer", resp.TokenType)
	s.Equal(int64(15*60), resp.ExpiresIn)

	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	s.Require().NoError(err)
	s.True(token.Valid)
	s.Equal(tenant.TenantID.String(), claims.Subject)
	s.Equal("dave", claims.Name)

	s.Run("パスワード誤り", func() {
		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "dave@example.com", Password: "wrong-pass"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})
	s.Run("未登録のメールアドレス", func() {
		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})
}

func (s *AuthServiceTestSuite) TestGetTenant() {
	tenant := s.register("erin", "erin@example.com")

	got, err := s.authService.GetTenant(context.Background(), tenant.TenantID)
	s.Require().NoError(err)
	s.Equal("erin@example.com", got.Email)

	_, err = s.authService.GetTenant(context.Background(), uuid.New())
	s.ErrorIs(err, model.ErrNotFound)
}
