//go:generate mockery --name ReminderRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordnote/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.ReminderSettings, error)
	Save(ctx context.Context, db *gorm.DB, settings *model.ReminderSettings) error
	FindEnabled(ctx context.Context, db *gorm.DB) ([]*model.ReminderSettings, error)
	MarkSent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, sentAt time.Time) error
}

type gormReminderRepository struct{}

func NewGormReminderRepository() ReminderRepository {
	return &gormReminderRepository{}
}

func (r *gormReminderRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.ReminderSettings, error) {
	var settings model.ReminderSettings
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&settings)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReminderRepository.FindByTenant: %w", result.Error)
	}
	return &settings, nil
}

// Save は設定を作成または上書きします。last_sent_at は MarkSent でのみ更新します
func (r *gormReminderRepository) Save(ctx context.Context, db *gorm.DB, settings *model.ReminderSettings) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "start_minute", "end_minute", "interval_minutes", "updated_at"}),
	}).Create(settings)
	if result.Error != nil {
		return fmt.Errorf("gormReminderRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormReminderRepository) FindEnabled(ctx context.Context, db *gorm.DB) ([]*model.ReminderSettings, error) {
	var list []*model.ReminderSettings
	if result := db.WithContext(ctx).Where("enabled = ?", true).Find(&list); result.Error != nil {
		return nil, fmt.Errorf("gormReminderRepository.FindEnabled: %w", result.Error)
	}
	return list, nil
}

func (r *gormReminderRepository) MarkSent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, sentAt time.Time) error {
	result := db.WithContext(ctx).Model(&model.ReminderSettings{}).Where("tenant_id = ?", tenantID).Update("last_sent_at", sentAt)
	if result.Error != nil {
		return fmt.Errorf("gormReminderRepository.MarkSent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
