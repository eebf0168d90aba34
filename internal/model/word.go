// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word は単語帳の1エントリです
type Word struct {
	WordID       string    `gorm:"type:varchar(36);primaryKey" json:"word_id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index:idx_words_tenant_created,priority:1" json:"-"`
	Term         string    `gorm:"not null" json:"term"`           // 単語
	PartOfSpeech string    `gorm:"not null" json:"part_of_speech"` // 品詞
	Phonetic     string    `gorm:"not null" json:"phonetic"`       // 発音記号
	Meaning      string    `gorm:"not null" json:"meaning"`        // 意味
	Remind       bool      `gorm:"not null;index" json:"remind"`
	CreatedAt    time.Time `gorm:"index:idx_words_tenant_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term         string `json:"term" validate:"required,max=200"`
	PartOfSpeech string `json:"part_of_speech" validate:"max=50"`
	Phonetic     string `json:"phonetic" validate:"max=200"`
	Meaning      string `json:"meaning" validate:"required"`
	Remind       bool   `json:"remind"`
}

// 単語更新（全体）リクエストDTO
type PutWordRequest struct {
	Term         string `json:"term" validate:"required,max=200"`
	PartOfSpeech string `json:"part_of_speech" validate:"max=50"`
	Phonetic     string `json:"phonetic" validate:"max=200"`
	Meaning      string `json:"meaning" validate:"required"`
	Remind       bool   `json:"remind"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	Term         *string `json:"term,omitempty" validate:"omitempty,min=1,max=200"`
	PartOfSpeech *string `json:"part_of_speech,omitempty" validate:"omitempty,max=50"`
	Phonetic     *string `json:"phonetic,omitempty" validate:"omitempty,max=200"`
	Meaning      *string `json:"meaning,omitempty" validate:"omitempty,min=1"`
	Remind       *bool   `json:"remind,omitempty"`
}

// IsEmpty は更新対象のフィールドが1つも指定されていないかを返す
func (r *PatchWordRequest) IsEmpty() bool {
	return r.Term == nil && r.PartOfSpeech == nil && r.Phonetic == nil && r.Meaning == nil && r.Remind == nil
}
