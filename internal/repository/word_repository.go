//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordnote/internal/middleware"
	"wordnote/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WordRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, words []*model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordID string) (*model.Word, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Word, error)
	FindRemindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Word, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordIDs []string) (int64, error)
	CheckTermExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, term string, excludeWordID *string) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

// Upsert は主キー (word_id) が衝突したら全カラムを上書きします。作成と更新の両方に使います
func (r *gormWordRepository) Upsert(ctx context.Context, tx *gorm.DB, words []*model.Word) error {
	if len(words) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"term", "part_of_speech", "phonetic", "meaning", "remind", "updated_at"}),
	}).Create(&words)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on upsert words", "error", result.Error, "count", len(words))
			return model.ErrConflict
		}
		logger.Error("Error upserting words in DB", "error", result.Error, "count", len(words))
		return fmt.Errorf("gormWordRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordID string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// FindByTenant は新しい順に返します。一覧画面の並び順はこの順序がそのまま使われます
func (r *gormWordRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Order("word_id").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByTenant: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindRemindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Where("tenant_id = ? AND remind = ?", tenantID, true).Order("created_at DESC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding remind words in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindRemindByTenant: %w", result.Error)
	}
	return words, nil
}

// DeleteByIDs は物理削除します。存在しないIDは無視し、削除件数を返します
func (r *gormWordRepository) DeleteByIDs(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordIDs []string) (int64, error) {
	if len(wordIDs) == 0 {
		return 0, nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND word_id IN ?", tenantID, wordIDs).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting words in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"count", len(wordIDs),
		)
		return 0, fmt.Errorf("gormWordRepository.DeleteByIDs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, term string, excludeWordID *string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{}).Where("tenant_id = ? AND term = ?", tenantID, term)
	if excludeWordID != nil {
		query = query.Where("word_id != ?", *excludeWordID)
	}
	if result := query.Count(&count); result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"term", term,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}
