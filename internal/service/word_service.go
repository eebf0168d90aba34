// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"time"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/repository"
	"wordnote/internal/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
type WordService interface {
	PostWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
	GetWords(ctx context.Context, tenantID uuid.UUID) ([]*model.Word, error)
	GetWord(ctx context.Context, tenantID uuid.UUID, wordID string) (*model.Word, error)
	PutWord(ctx context.Context, tenantID uuid.UUID, wordID string, req *model.PutWordRequest) (*model.Word, error)
	PatchWord(ctx context.Context, tenantID uuid.UUID, wordID string, req *model.PatchWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, tenantID uuid.UUID, wordID string) error
}

// WordWriter は単語の書き込み先。書き込みは購読者とリモートミラーにも届きます
type WordWriter interface {
	Write(ctx context.Context, word model.Word) *store.Result
	Delete(ctx context.Context, tenantID uuid.UUID, wordIDs []string) *store.Result
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	writer   WordWriter
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, writer WordWriter) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		writer:   writer,
	}
}

func (s *wordService) PostWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if req.Term == "" || req.Meaning == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語と意味は必須項目です。", "term", model.ErrInvalidInput)
	}

	if err := s.checkDuplicate(ctx, tenantID, req.Term, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	word := model.Word{
		WordID:       uuid.NewString(),
		TenantID:     tenantID,
		Term:         req.Term,
		PartOfSpeech: req.PartOfSpeech,
		Phonetic:     req.Phonetic,
		Meaning:      req.Meaning,
		Remind:       req.Remind,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.save(ctx, word); err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", word.WordID)
	return &word, nil
}

func (s *wordService) GetWords(ctx context.Context, tenantID uuid.UUID) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	return words, nil
}

func (s *wordService) GetWord(ctx context.Context, tenantID uuid.UUID, wordID string) (*model.Word, error) {
	return s.findWord(ctx, tenantID, wordID)
}

func (s *wordService) PutWord(ctx context.Context, tenantID uuid.UUID, wordID string, req *model.PutWordRequest) (*model.Word, error) {
	word, err := s.findWord(ctx, tenantID, wordID)
	if err != nil {
		return nil, err
	}
	if req.Term != word.Term {
		if err := s.checkDuplicate(ctx, tenantID, req.Term, &wordID); err != nil {
			return nil, err
		}
	}

	word.Term = req.Term
	word.PartOfSpeech = req.PartOfSpeech
	word.Phonetic = req.Phonetic
	word.Meaning = req.Meaning
	word.Remind = req.Remind
	word.UpdatedAt = time.Now()
	if err := s.save(ctx, *word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *wordService) PatchWord(ctx context.Context, tenantID uuid.UUID, wordID string, req *model.PatchWordRequest) (*model.Word, error) {
	if req.IsEmpty() {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目が指定されていません。", "", model.ErrInvalidInput)
	}
	word, err := s.findWord(ctx, tenantID, wordID)
	if err != nil {
		return nil, err
	}

	if req.Term != nil && *req.Term != word.Term {
		if err := s.checkDuplicate(ctx, tenantID, *req.Term, &wordID); err != nil {
			return nil, err
		}
		word.Term = *req.Term
	}
	if req.PartOfSpeech != nil {
		word.PartOfSpeech = *req.PartOfSpeech
	}
	if req.Phonetic != nil {
		word.Phonetic = *req.Phonetic
	}
	if req.Meaning != nil {
		word.Meaning = *req.Meaning
	}
	if req.Remind != nil {
		word.Remind = *req.Remind
	}
	word.UpdatedAt = time.Now()
	if err := s.save(ctx, *word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *wordService) DeleteWord(ctx context.Context, tenantID uuid.UUID, wordID string) error {
	if _, err := s.findWord(ctx, tenantID, wordID); err != nil {
		return err
	}
	err := s.writer.Delete(ctx, tenantID, []string{wordID}).Wait(ctx)
	if err := s.storeError(ctx, err, "単語の削除に失敗しました。"); err != nil {
		return err
	}
	middleware.GetLogger(ctx).Info("Word deleted", "word_id", wordID)
	return nil
}

func (s *wordService) findWord(ctx context.Context, tenantID uuid.UUID, wordID string) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, tenantID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to find word", "error", err, "word_id", wordID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	return word, nil
}

func (s *wordService) checkDuplicate(ctx context.Context, tenantID uuid.UUID, term string, excludeWordID *string) error {
	exists, err := s.wordRepo.CheckTermExists(ctx, s.db, tenantID, term, excludeWordID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to check term existence", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の重複確認に失敗しました。", "", err)
	}
	if exists {
		return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", model.ErrConflict)
	}
	return nil
}

func (s *wordService) save(ctx context.Context, word model.Word) error {
	err := s.writer.Write(ctx, word).Wait(ctx)
	return s.storeError(ctx, err, "単語の保存に失敗しました。")
}

// storeError はミラーだけの失敗なら警告に留め、それ以外は AppError にします
func (s *wordService) storeError(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	if errors.Is(err, store.ErrMirror) {
		logger.Warn("Word saved locally but mirror write failed", "error", err)
		return nil
	}
	if errors.Is(err, model.ErrConflict) {
		return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", model.ErrConflict)
	}
	logger.Error("Word store write failed", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", msg, "", err)
}
