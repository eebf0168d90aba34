//go:generate mockery --name TenantRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordnote/internal/middleware"
	"wordnote/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Tenant, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error)
}

type gormTenantRepository struct{}

func NewGormTenantRepository() TenantRepository {
	return &gormTenantRepository{}
}

func (r *gormTenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn(
				"Duplicate key error on create tenant",
				"error", result.Error,
				"tenant_name", tenant.Name,
				"email", tenant.Email,
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error creating tenant in DB",
			"error", result.Error,
			"tenant_name", tenant.Name,
		)
		return fmt.Errorf("gormTenantRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormTenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	return r.findOne(ctx, db, "tenant_id", tenantID)
}

func (r *gormTenantRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Tenant, error) {
	return r.findOne(ctx, db, "name", name)
}

func (r *gormTenantRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error) {
	return r.findOne(ctx, db, "email", email)
}

func (r *gormTenantRepository) findOne(ctx context.Context, db *gorm.DB, column string, value interface{}) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where(column+" = ?", value).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Tenant not found", "column", column)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding tenant in DB",
			"error", result.Error,
			"column", column,
		)
		return nil, fmt.Errorf("gormTenantRepository.FindBy(%s): %w", column, result.Error)
	}
	return &tenant, nil
}
