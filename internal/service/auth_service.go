package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordnote/internal/config"
	"wordnote/internal/mailer"
	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
type AuthService interface {
	RegisterTenant(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
}

type authService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	mailer     mailer.Mailer
	cfg        *config.Config
	now        func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します。mailer が nil なら登録メールは送りません
func NewAuthService(db *gorm.DB, tenantRepo repository.TenantRepository, m mailer.Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:         db,
		tenantRepo: tenantRepo,
		mailer:     m,
		cfg:        cfg,
		now:        time.Now,
	}
}

// RegisterTenant は新しいユーザーを登録します。登録直後からログインできます
func (s *authService) RegisterTenant(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var newTenant *model.Tenant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.tenantRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// Nameでの重複チェック
		_, err = s.tenantRepo.FindByName(ctx, tx, req.Name)
		if err == nil {
			logger.Warn("Tenant name already exists", "name", req.Name)
			return model.NewAppError("DUPLICATE_NAME", "そのユーザ名は既に使用されています。", "name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		tenant := &model.Tenant{
			TenantID:     uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			IsActive:     true,
		}
		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			// チェックと作成の間に別リクエストが同じ値で登録した場合
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during tenant creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "指定された名前またはEmailは既に使用されています。", "name,email", model.ErrConflict)
			}
			logger.Error("Failed to create tenant in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newTenant = tenant
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(ctx, newTenant)
	logger.Info("Tenant registered", "tenant_id", newTenant.TenantID, "email", newTenant.Email)
	return newTenant, nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	tenant, err := s.tenantRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "tenant_id", tenant.TenantID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	if !tenant.IsActive {
		logger.Warn("Login failed: account not active", "tenant_id", tenant.TenantID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "このアカウントは無効化されています。", "", model.ErrForbidden)
	}

	now := s.now()
	claims := &model.JWTCustomClaims{
		Name: tenant.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   tenant.TenantID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.ExpiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "tenant_id", tenant.TenantID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "tenant_id", tenant.TenantID)
	return &model.LoginResponse{
		AccessToken: signedToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.JWT.ExpiresIn / time.Second),
	}, nil
}

// GetTenant は指定されたIDのテナントを取得します
func (s *authService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Tenant not found", "tenant_id", tenantID.String())
			return nil, model.NewAppError("TENANT_NOT_FOUND", "テナントが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding tenant by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return tenant, nil
}

// sendWelcomeEmail の失敗は登録を失敗させない
func (s *authService) sendWelcomeEmail(ctx context.Context, tenant *model.Tenant) {
	if s.mailer == nil {
		return
	}
	subject := fmt.Sprintf("【%s】ご登録ありがとうございます", config.AppName)
	body := fmt.Sprintf("%s さん\n\n%s へのご登録ありがとうございます。\n単語を登録して、フラッシュカードで復習を始めましょう。", tenant.Name, config.AppName)
	if err := s.mailer.Send(ctx, tenant.Email, subject, body); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to send welcome email", "error", err, "tenant_id", tenant.TenantID)
	}
}
