package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"wordnote/internal/config"
	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name FlashcardService --output ./mocks --outpkg mocks --case=underscore
type FlashcardService interface {
	GetFlashcards(ctx context.Context, tenantID uuid.UUID) ([]*model.FlashcardResponse, error)
	SubmitResult(ctx context.Context, tenantID uuid.UUID, wordID string, isCorrect bool) error
}

type flashcardService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	progRepo repository.ProgressRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewFlashcardService(db *gorm.DB, wordRepo repository.WordRepository, progRepo repository.ProgressRepository, cfg *config.Config) FlashcardService {
	return &flashcardService{
		db:       db,
		wordRepo: wordRepo,
		progRepo: progRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// GetFlashcards は復習日が来た単語を review_limit 件まで返します。一度も復習していない単語は常に対象です
func (s *flashcardService) GetFlashcards(ctx context.Context, tenantID uuid.UUID) ([]*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to find words for flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "フラッシュカードの取得に失敗しました。", "", err)
	}
	progresses, err := s.progRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to find progress for flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "フラッシュカードの取得に失敗しました。", "", err)
	}
	byWord := make(map[string]*model.LearningProgress, len(progresses))
	for _, p := range progresses {
		byWord[p.WordID] = p
	}

	type card struct {
		resp *model.FlashcardResponse
		due  time.Time
	}
	now := s.now()
	cards := make([]card, 0, len(words))
	for _, w := range words {
		level := model.Level1
		var due time.Time
		if p, ok := byWord[w.WordID]; ok {
			if p.NextReviewDate.After(now) {
				continue
			}
			level = p.Level
			due = p.NextReviewDate
		}
		cards = append(cards, card{
			resp: &model.FlashcardResponse{
				WordID:       w.WordID,
				Term:         w.Term,
				PartOfSpeech: w.PartOfSpeech,
				Phonetic:     w.Phonetic,
				Meaning:      w.Meaning,
				Level:        int(level),
			},
			due: due,
		})
	}
	// 未復習 (due がゼロ値) を先頭に、あとは期限の古い順
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].due.Before(cards[j].due) })

	limit := s.cfg.App.ReviewLimit
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	responses := make([]*model.FlashcardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, c.resp)
	}

	logger.Info("Successfully retrieved flashcards", "count", len(responses))
	return responses, nil
}

// SubmitResult は自己採点の結果で学習進捗を作成または更新します
func (s *flashcardService) SubmitResult(ctx context.Context, tenantID uuid.UUID, wordID string, isCorrect bool) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, tenantID, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error finding word in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の確認中にエラーが発生しました。", "", err)
		}

		progress, err := s.progRepo.FindByWordID(ctx, tx, tenantID, wordID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding progress in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の確認中にエラーが発生しました。", "", err)
		}
		isFound := err == nil

		now := s.now()
		newLevel, nextReviewDate := calculateNextProgress(progress, isCorrect, now, logger)

		if !isFound {
			newProgress := &model.LearningProgress{
				ProgressID:     uuid.New(),
				TenantID:       tenantID,
				WordID:         wordID,
				Level:          newLevel,
				NextReviewDate: nextReviewDate,
				LastReviewedAt: &now,
			}
			if createErr := s.progRepo.Create(ctx, tx, newProgress); createErr != nil {
				logger.Error("Error creating new progress", "error", createErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の作成に失敗しました。", "", createErr)
			}
			logger.Info("Progress created", "is_correct", isCorrect, "level", int(newLevel))
			return nil
		}

		progress.Level = newLevel
		progress.NextReviewDate = nextReviewDate
		progress.LastReviewedAt = &now
		if updateErr := s.progRepo.Update(ctx, tx, progress); updateErr != nil {
			if errors.Is(updateErr, model.ErrNotFound) {
				logger.Warn("Failed to update progress, record not found", "error", updateErr)
				return model.NewAppError("NOT_FOUND", "更新対象の学習進捗が見つかりませんでした。", "", updateErr)
			}
			logger.Error("Error updating existing progress", "error", updateErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", updateErr)
		}
		logger.Info("Progress updated", "is_correct", isCorrect, "level", int(newLevel))
		return nil
	})
}

// calculateNextProgress は次のレベルと復習日を返します。
// 不正解ならレベル1に戻して翌日、正解なら 3日 / 7日 / 14日 後
func calculateNextProgress(progress *model.LearningProgress, isCorrect bool, now time.Time, logger *slog.Logger) (model.ProgressLevel, time.Time) {
	if !isCorrect {
		return model.Level1, now.AddDate(0, 0, 1)
	}

	currentLevel := model.Level1
	if progress != nil {
		currentLevel = progress.Level
	}

	switch currentLevel {
	case model.Level1:
		return model.Level2, now.AddDate(0, 0, 3)
	case model.Level2:
		return model.Level3, now.AddDate(0, 0, 7)
	case model.Level3:
		return model.Level3, now.AddDate(0, 0, 14)
	default:
		logger.Warn("Invalid progress level found, resetting to Level 1", "invalid_level", int(currentLevel))
		return model.Level1, now.AddDate(0, 0, 1)
	}
}
