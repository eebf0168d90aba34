//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error
	Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error
	FindByWordID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordID string) (*model.LearningProgress, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.LearningProgress, error)
	DeleteByWordIDs(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordIDs []string) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return model.ErrConflict
		}
		middleware.GetLogger(ctx).Error("Error creating progress in DB", "error", result.Error, "word_id", progress.WordID)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	result := tx.WithContext(ctx).Model(&model.LearningProgress{}).
		Where("progress_id = ? AND tenant_id = ?", progress.ProgressID, progress.TenantID).
		Updates(map[string]interface{}{
			"level":            progress.Level,
			"next_review_date": progress.NextReviewDate,
			"last_reviewed_at": progress.LastReviewedAt,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating progress in DB", "error", result.Error, "progress_id", progress.ProgressID)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProgressRepository) FindByWordID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordID string) (*model.LearningProgress, error) {
	var progress model.LearningProgress
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindByWordID: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.LearningProgress, error) {
	var progresses []*model.LearningProgress
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&progresses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindByTenant: %w", result.Error)
	}
	return progresses, nil
}

// DeleteByWordIDs は単語の物理削除に合わせて進捗も消します
func (r *gormProgressRepository) DeleteByWordIDs(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordIDs []string) error {
	if len(wordIDs) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Where("tenant_id = ? AND word_id IN ?", tenantID, wordIDs).Delete(&model.LearningProgress{})
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.DeleteByWordIDs: %w", result.Error)
	}
	return nil
}
