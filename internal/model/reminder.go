package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderSettings は復習リマインダーの通知設定です。時刻は0時からの経過分で保持します
type ReminderSettings struct {
	TenantID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Enabled         bool      `gorm:"not null;index"`
	StartMinute     int       `gorm:"not null"`
	EndMinute       int       `gorm:"not null"`
	IntervalMinutes int       `gorm:"not null"`
	LastSentAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ReminderSettings) TableName() string {
	return "reminder_settings"
}

// デフォルトは 9:00 から 21:00 まで 3 時間おき
func DefaultReminderSettings(tenantID uuid.UUID) *ReminderSettings {
	return &ReminderSettings{
		TenantID:        tenantID,
		Enabled:         false,
		StartMinute:     9 * 60,
		EndMinute:       21 * 60,
		IntervalMinutes: 180,
	}
}

// ReminderSettingsRequest は通知設定の更新リクエスト。時刻は "HH:MM"
type ReminderSettingsRequest struct {
	Enabled         bool   `json:"enabled"`
	StartTime       string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string `json:"end_time" validate:"required,datetime=15:04"`
	IntervalMinutes int    `json:"interval_minutes" validate:"required,min=1,max=1440"`
}

// ReminderSettingsResponse は通知設定のレスポンス
type ReminderSettingsResponse struct {
	Enabled         bool       `json:"enabled"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	IntervalMinutes int        `json:"interval_minutes"`
	LastSentAt      *time.Time `json:"last_sent_at,omitempty"`
}

// NextRemindersResponse は次回以降の通知予定時刻
type NextRemindersResponse struct {
	Triggers []time.Time `json:"triggers"`
}
