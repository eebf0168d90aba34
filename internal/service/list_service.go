package service

import (
	"context"
	"errors"

	"wordnote/internal/listview"
	"wordnote/internal/middleware"
	"wordnote/internal/model"

	"github.com/google/uuid"
)

// ListService は単語一覧画面のセッション (選択・検索・削除待ち) への操作です
//
//go:generate mockery --name ListService --output ./mocks --outpkg mocks --case=underscore
type ListService interface {
	GetState(ctx context.Context, tenantID uuid.UUID) (model.UIState, error)
	Watch(ctx context.Context, tenantID uuid.UUID) (<-chan model.UIState, func(), error)
	Toggle(ctx context.Context, tenantID uuid.UUID, wordID string) (model.UIState, error)
	SelectAll(ctx context.Context, tenantID uuid.UUID) (model.UIState, error)
	ClearSelection(ctx context.Context, tenantID uuid.UUID) (model.UIState, error)
	StartSearching(ctx context.Context, tenantID uuid.UUID) (model.UIState, error)
	StopSearching(ctx context.Context, tenantID uuid.UUID) (model.UIState, error)
	SetQuery(ctx context.Context, tenantID uuid.UUID, query string) (model.UIState, error)
	RemindSelected(ctx context.Context, tenantID uuid.UUID) (*model.RemindSelectedResponse, error)
	DeleteSelected(ctx context.Context, tenantID uuid.UUID) (*model.DeleteSelectedResponse, error)
	Restore(ctx context.Context, tenantID uuid.UUID, batchID string) (model.UIState, error)
	Commit(ctx context.Context, tenantID uuid.UUID, batchID string) (model.UIState, error)
}

type listService struct {
	registry *listview.Registry
}

func NewListService(registry *listview.Registry) ListService {
	return &listService{registry: registry}
}

// with はセッションを借りて fn を実行します。セッション自体は猶予期間のあいだ残ります
func (s *listService) with(ctx context.Context, tenantID uuid.UUID, fn func(c *listview.Combiner) (model.UIState, error)) (model.UIState, error) {
	c, release, err := s.registry.Acquire(ctx, tenantID)
	if err != nil {
		return model.UIState{}, sessionError(ctx, err)
	}
	defer release()
	state, err := fn(c)
	if err != nil {
		return state, sessionError(ctx, err)
	}
	return state, nil
}

func sessionError(ctx context.Context, err error) error {
	logger := middleware.GetLogger(ctx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		logger.Warn("Pending batch not found", "error", err)
		return model.NewAppError("BATCH_NOT_FOUND", "指定された削除待ちの操作が見つかりません。", "batch_id", model.ErrNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		logger.Error("List session error", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の読み込みに失敗しました。", "", err)
	}
}

func (s *listService) GetState(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.State(), nil
	})
}

// Watch は状態の購読を始めます。ctx が終わるか stop を呼ぶとチャネルが閉じます
func (s *listService) Watch(ctx context.Context, tenantID uuid.UUID) (<-chan model.UIState, func(), error) {
	c, release, err := s.registry.Acquire(ctx, tenantID)
	if err != nil {
		return nil, nil, sessionError(ctx, err)
	}
	subCtx, cancel := context.WithCancel(ctx)
	ch := c.Subscribe(subCtx)
	stop := func() {
		cancel()
		release()
	}
	return ch, stop, nil
}

func (s *listService) Toggle(ctx context.Context, tenantID uuid.UUID, wordID string) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.Toggle(wordID), nil
	})
}

func (s *listService) SelectAll(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.SelectAll(), nil
	})
}

func (s *listService) ClearSelection(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.ClearSelection(), nil
	})
}

func (s *listService) StartSearching(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.StartSearching(), nil
	})
}

func (s *listService) StopSearching(ctx context.Context, tenantID uuid.UUID) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.StopSearching(), nil
	})
}

func (s *listService) SetQuery(ctx context.Context, tenantID uuid.UUID, query string) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.SetQuery(query), nil
	})
}

// RemindSelected は書き込みの完了を待たずに返します。失敗は UIState の error に出ます
func (s *listService) RemindSelected(ctx context.Context, tenantID uuid.UUID) (*model.RemindSelectedResponse, error) {
	var count int
	state, err := s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		var st model.UIState
		_, count, st = c.RemindSelected(ctx)
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).Info("Remind flag set on selected words", "count", count)
	return &model.RemindSelectedResponse{Count: count, State: state}, nil
}

func (s *listService) DeleteSelected(ctx context.Context, tenantID uuid.UUID) (*model.DeleteSelectedResponse, error) {
	var batchID string
	var count int
	state, err := s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		var st model.UIState
		batchID, count, st = c.DeleteSelected()
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	if batchID != "" {
		middleware.GetLogger(ctx).Info("Selected words staged for deletion", "batch_id", batchID, "count", count)
	}
	return &model.DeleteSelectedResponse{BatchID: batchID, Count: count, State: state}, nil
}

func (s *listService) Restore(ctx context.Context, tenantID uuid.UUID, batchID string) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		return c.Restore(batchID)
	})
}

// Commit は削除を確定します。ストアへの書き込みは待ちません
func (s *listService) Commit(ctx context.Context, tenantID uuid.UUID, batchID string) (model.UIState, error) {
	return s.with(ctx, tenantID, func(c *listview.Combiner) (model.UIState, error) {
		_, st, err := c.Commit(ctx, batchID)
		return st, err
	})
}
