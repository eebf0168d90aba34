package service

import (
	"context"
	"errors"
	"time"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/reminder"
	"wordnote/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultNextTriggers = 5

//go:generate mockery --name ReminderService --output ./mocks --outpkg mocks --case=underscore
type ReminderService interface {
	GetSettings(ctx context.Context, tenantID uuid.UUID) (*model.ReminderSettingsResponse, error)
	PutSettings(ctx context.Context, tenantID uuid.UUID, req *model.ReminderSettingsRequest) (*model.ReminderSettingsResponse, error)
	NextTriggers(ctx context.Context, tenantID uuid.UUID, n int) (*model.NextRemindersResponse, error)
}

type reminderService struct {
	db           *gorm.DB
	reminderRepo repository.ReminderRepository
	now          func() time.Time
}

func NewReminderService(db *gorm.DB, reminderRepo repository.ReminderRepository) ReminderService {
	return &reminderService{
		db:           db,
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

// load は未設定ならデフォルト (無効) を返します
func (s *reminderService) load(ctx context.Context, tenantID uuid.UUID) (*model.ReminderSettings, error) {
	settings, err := s.reminderRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.DefaultReminderSettings(tenantID), nil
		}
		middleware.GetLogger(ctx).Error("Failed to find reminder settings", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知設定の取得に失敗しました。", "", err)
	}
	return settings, nil
}

func (s *reminderService) GetSettings(ctx context.Context, tenantID uuid.UUID) (*model.ReminderSettingsResponse, error) {
	settings, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return newReminderSettingsResponse(settings), nil
}

func (s *reminderService) PutSettings(ctx context.Context, tenantID uuid.UUID, req *model.ReminderSettingsRequest) (*model.ReminderSettingsResponse, error) {
	start, err := reminder.ParseClock(req.StartTime)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "開始時刻はHH:MM形式で入力してください。", "start_time", model.ErrInvalidInput)
	}
	end, err := reminder.ParseClock(req.EndTime)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "終了時刻はHH:MM形式で入力してください。", "end_time", model.ErrInvalidInput)
	}
	if req.IntervalMinutes <= 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "通知間隔は1以上で入力してください。", "interval_minutes", model.ErrInvalidInput)
	}

	settings, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	settings.Enabled = req.Enabled
	settings.StartMinute = start
	settings.EndMinute = end
	settings.IntervalMinutes = req.IntervalMinutes
	settings.UpdatedAt = s.now()
	if err := s.reminderRepo.Save(ctx, s.db, settings); err != nil {
		middleware.GetLogger(ctx).Error("Failed to save reminder settings", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知設定の保存に失敗しました。", "", err)
	}
	middleware.GetLogger(ctx).Info("Reminder settings saved", "enabled", settings.Enabled)
	return newReminderSettingsResponse(settings), nil
}

// NextTriggers は n が 0 以下ならデフォルト件数を返します
func (s *reminderService) NextTriggers(ctx context.Context, tenantID uuid.UUID, n int) (*model.NextRemindersResponse, error) {
	if n <= 0 {
		n = defaultNextTriggers
	}
	settings, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &model.NextRemindersResponse{Triggers: reminder.NextTriggers(settings, s.now(), n)}, nil
}

func newReminderSettingsResponse(s *model.ReminderSettings) *model.ReminderSettingsResponse {
	return &model.ReminderSettingsResponse{
		Enabled:         s.Enabled,
		StartTime:       reminder.FormatClock(s.StartMinute),
		EndTime:         reminder.FormatClock(s.EndMinute),
		IntervalMinutes: s.IntervalMinutes,
		LastSentAt:      s.LastSentAt,
	}
}
