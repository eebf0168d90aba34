package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wordnote/internal/model"
)

func TestReminderHandler_Settings(t *testing.T) {
	tenantID := uuid.New()

	t.Run("GET", func(t *testing.T) {
		s := newTestServer(t)
		s.reminder.On("GetSettings", mock.Anything, tenantID).
			Return(&model.ReminderSettingsResponse{StartTime: "09:00", EndTime: "21:00", IntervalMinutes: 180}, nil).Once()

		rr := s.do(t, http.MethodGet, "/api/v1/reminders/settings", &tenantID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"start_time":"09:00"`)
	})

	t.Run("PUT", func(t *testing.T) {
		s := newTestServer(t)
		req := model.ReminderSettingsRequest{Enabled: true, StartTime: "08:00", EndTime: "20:00", IntervalMinutes: 60}
		s.reminder.On("PutSettings", mock.Anything, tenantID, &req).
			Return(&model.ReminderSettingsResponse{Enabled: true, StartTime: "08:00", EndTime: "20:00", IntervalMinutes: 60}, nil).Once()

		rr := s.do(t, http.MethodPut, "/api/v1/reminders/settings", &tenantID, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("PUT 時刻の形式が不正", func(t *testing.T) {
		s := newTestServer(t)
		req := model.ReminderSettingsRequest{StartTime: "8時", EndTime: "20:00", IntervalMinutes: 60}

		rr := s.do(t, http.MethodPut, "/api/v1/reminders/settings", &tenantID, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rr))
	})
}

func TestReminderHandler_NextTriggers(t *testing.T) {
	tenantID := uuid.New()

	t.Run("件数指定", func(t *testing.T) {
		s := newTestServer(t)
		s.reminder.On("NextTriggers", mock.Anything, tenantID, 2).
			Return(&model.NextRemindersResponse{Triggers: []time.Time{time.Now(), time.Now().Add(time.Hour)}}, nil).Once()

		rr := s.do(t, http.MethodGet, "/api/v1/reminders/next?n=2", &tenantID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("件数が範囲外", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.do(t, http.MethodGet, "/api/v1/reminders/next?n=0", &tenantID, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
