package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"wordnote/internal/mailer"
	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/repository"

	"gorm.io/gorm"
)

// Scheduler は通知時刻を迎えたテナントにリマインド単語を1つ送ります
type Scheduler struct {
	db           *gorm.DB
	reminderRepo repository.ReminderRepository
	wordRepo     repository.WordRepository
	tenantRepo   repository.TenantRepository
	mailer       mailer.Mailer
	logger       *slog.Logger
	now          func() time.Time
	pick         func(n int) int
}

func NewScheduler(
	db *gorm.DB,
	reminderRepo repository.ReminderRepository,
	wordRepo repository.WordRepository,
	tenantRepo repository.TenantRepository,
	m mailer.Mailer,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		db:           db,
		reminderRepo: reminderRepo,
		wordRepo:     wordRepo,
		tenantRepo:   tenantRepo,
		mailer:       m,
		logger:       logger,
		now:          time.Now,
		pick:         rand.IntN,
	}
}

// Run は interval ごとに RunOnce を呼びます。ctx が終わるまで戻りません
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.logger.Info("Reminder scheduler started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Reminder scheduler stopped")
			return nil
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error("Reminder pass finished with errors", "error", err)
			}
		}
	}
}

// RunOnce は有効な設定を1巡して送信件数を返します。1テナントの失敗で他を止めません
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	ctx = middleware.WithLogger(ctx, s.logger)
	list, err := s.reminderRepo.FindEnabled(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("Scheduler.RunOnce: %w", err)
	}

	now := s.now()
	sent := 0
	var errs []error
	for _, settings := range list {
		if !Due(settings, now) {
			continue
		}
		ok, err := s.remind(ctx, settings, now)
		if err != nil {
			s.logger.Error("Failed to send reminder", "error", err, "tenant_id", settings.TenantID)
			errs = append(errs, err)
			continue
		}
		if ok {
			sent++
		}
	}
	s.logger.Info("Reminder pass done", "checked", len(list), "sent", sent)
	return sent, errors.Join(errs...)
}

func (s *Scheduler) remind(ctx context.Context, settings *model.ReminderSettings, now time.Time) (bool, error) {
	words, err := s.wordRepo.FindRemindByTenant(ctx, s.db, settings.TenantID)
	if err != nil {
		return false, err
	}
	if len(words) == 0 {
		// 送る単語がなくてもこの通知時刻は消化する
		return false, s.reminderRepo.MarkSent(ctx, s.db, settings.TenantID, now)
	}
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, settings.TenantID)
	if err != nil {
		return false, err
	}

	word := words[s.pick(len(words))]
	subject := fmt.Sprintf("【復習】%s", word.Term)
	body := word.Term
	if word.Phonetic != "" {
		body += " " + word.Phonetic
	}
	if word.PartOfSpeech != "" {
		body += fmt.Sprintf(" (%s)", word.PartOfSpeech)
	}
	body += "\n\n" + word.Meaning
	if err := s.mailer.Send(ctx, tenant.Email, subject, body); err != nil {
		return false, err
	}
	if err := s.reminderRepo.MarkSent(ctx, s.db, settings.TenantID, now); err != nil {
		return true, err
	}
	s.logger.Debug("Reminder sent", "tenant_id", settings.TenantID, "word_id", word.WordID)
	return true, nil
}
