package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordnote/internal/model"
)

func TestFlashcardHandler_GetFlashcards(t *testing.T) {
	tenantID := uuid.New()
	s := newTestServer(t)
	s.flashcard.On("GetFlashcards", mock.Anything, tenantID).
		Return([]*model.FlashcardResponse{{WordID: "w1", Term: "apple", Meaning: "りんご", Level: 1}}, nil).Once()

	rr := s.do(t, http.MethodGet, "/api/v1/flashcards", &tenantID, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var cards []model.FlashcardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "apple", cards[0].Term)
}

func TestFlashcardHandler_SubmitResult(t *testing.T) {
	tenantID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(s *testServer)
		expectedStatus int
	}{
		{
			name: "正解",
			body: `{"is_correct":true}`,
			setupMock: func(s *testServer) {
				s.flashcard.On("SubmitResult", mock.Anything, tenantID, "w1", true).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "不正解 (false も受け付ける)",
			body: `{"is_correct":false}`,
			setupMock: func(s *testServer) {
				s.flashcard.On("SubmitResult", mock.Anything, tenantID, "w1", false).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "is_correct がない",
			body:           `{}`,
			setupMock:      func(s *testServer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "単語が存在しない",
			body: `{"is_correct":true}`,
			setupMock: func(s *testServer) {
				s.flashcard.On("SubmitResult", mock.Anything, tenantID, "w1", true).
					Return(model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.setupMock(s)
			rr := s.do(t, http.MethodPut, "/api/v1/flashcards/w1/result", &tenantID, tc.body)
			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}
