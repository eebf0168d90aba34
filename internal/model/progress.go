// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgressLevel int

const (
	Level1 ProgressLevel = iota + 1 // 1
	Level2                          // 2
	Level3                          // 3
)

// LearningProgress はフラッシュカードでの単語の学習進捗を表します
type LearningProgress struct {
	ProgressID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID     `gorm:"type:uuid;not null;index:idx_progress_tenant_word,unique"`
	WordID         string        `gorm:"type:varchar(36);not null;index:idx_progress_tenant_word,unique"`
	Level          ProgressLevel `gorm:"not null"`
	NextReviewDate time.Time     `gorm:"not null;index"`
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}
