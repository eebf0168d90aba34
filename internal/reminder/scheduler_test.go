package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"wordnote/internal/model"
	"wordnote/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type schedulerFixture struct {
	reminderRepo *mocks.ReminderRepository
	wordRepo     *mocks.WordRepository
	tenantRepo   *mocks.TenantRepository
	mailer       *recordingMailer
	scheduler    *Scheduler
}

func newSchedulerFixture(t *testing.T, now time.Time) *schedulerFixture {
	f := &schedulerFixture{
		reminderRepo: mocks.NewReminderRepository(t),
		wordRepo:     mocks.NewWordRepository(t),
		tenantRepo:   mocks.NewTenantRepository(t),
		mailer:       &recordingMailer{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.scheduler = NewScheduler(nil, f.reminderRepo, f.wordRepo, f.tenantRepo, f.mailer, logger)
	f.scheduler.now = func() time.Time { return now }
	f.scheduler.pick = func(n int) int { return n - 1 }
	return f
}

func TestScheduler_RunOnce(t *testing.T) {
	now := at(10, 13, 0)

	t.Run("期限の来たテナントに最後の単語を送る", func(t *testing.T) {
		f := newSchedulerFixture(t, now)
		due := enabled(9*60, 21*60, 180)
		sent := at(10, 12, 1)
		notDue := enabled(9*60, 21*60, 180)
		notDue.LastSentAt = &sent

		f.reminderRepo.On("FindEnabled", mock.Anything, mock.Anything).Return([]*model.ReminderSettings{due, notDue}, nil)
		f.wordRepo.On("FindRemindByTenant", mock.Anything, mock.Anything, due.TenantID).Return([]*model.Word{
			{WordID: "w1", Term: "apple", Meaning: "りんご"},
			{WordID: "w2", Term: "banana", Phonetic: "/bəˈnɑːnə/", PartOfSpeech: "noun", Meaning: "バナナ"},
		}, nil)
		f.tenantRepo.On("FindByID", mock.Anything, mock.Anything, due.TenantID).Return(&model.Tenant{TenantID: due.TenantID, Email: "a@example.com"}, nil)
		f.reminderRepo.On("MarkSent", mock.Anything, mock.Anything, due.TenantID, now).Return(nil)

		count, err := f.scheduler.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "a@example.com", f.mailer.sent[0].to)
		assert.Contains(t, f.mailer.sent[0].subject, "banana")
		assert.Contains(t, f.mailer.sent[0].body, "バナナ")
	})

	t.Run("リマインド単語がなければ送らずに消化する", func(t *testing.T) {
		f := newSchedulerFixture(t, now)
		s := enabled(9*60, 21*60, 180)
		f.reminderRepo.On("FindEnabled", mock.Anything, mock.Anything).Return([]*model.ReminderSettings{s}, nil)
		f.wordRepo.On("FindRemindByTenant", mock.Anything, mock.Anything, s.TenantID).Return([]*model.Word{}, nil)
		f.reminderRepo.On("MarkSent", mock.Anything, mock.Anything, s.TenantID, now).Return(nil)

		count, err := f.scheduler.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("送信失敗は他のテナントを止めない", func(t *testing.T) {
		f := newSchedulerFixture(t, now)
		f.mailer.err = errors.New("smtp down")
		a := enabled(9*60, 21*60, 180)
		b := enabled(9*60, 21*60, 180)
		f.reminderRepo.On("FindEnabled", mock.Anything, mock.Anything).Return([]*model.ReminderSettings{a, b}, nil)
		for _, s := range []*model.ReminderSettings{a, b} {
			f.wordRepo.On("FindRemindByTenant", mock.Anything, mock.Anything, s.TenantID).Return([]*model.Word{{WordID: "w", Term: "t", Meaning: "m"}}, nil)
			f.tenantRepo.On("FindByID", mock.Anything, mock.Anything, s.TenantID).Return(&model.Tenant{TenantID: s.TenantID, Email: "x@example.com"}, nil)
		}

		count, err := f.scheduler.RunOnce(context.Background())
		assert.Error(t, err)
		assert.Zero(t, count)
		f.reminderRepo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("設定の取得に失敗", func(t *testing.T) {
		f := newSchedulerFixture(t, now)
		f.reminderRepo.On("FindEnabled", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := f.scheduler.RunOnce(context.Background())
		assert.Error(t, err)
	})
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	f := newSchedulerFixture(t, at(10, 13, 0))
	f.reminderRepo.On("FindEnabled", mock.Anything, mock.Anything).Return([]*model.ReminderSettings{}, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.scheduler.Run(ctx, 5*time.Millisecond) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
