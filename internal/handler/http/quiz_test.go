package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikas-m/wortschatz/internal/service"
	"github.com/mikas-m/wortschatz/models"
)

func newHandlerWithQuiz(t *testing.T, quiz service.QuizService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{QuizService: quiz})
}

func TestGetQuizCard_Success(t *testing.T) {
	quiz := &mockQuizService{
		cardFn: func(_ context.Context, userID int64, kind models.WordKind, direction models.QuizDirection) (models.QuizCard, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.WordKindDialect, kind)
			assert.Equal(t, models.QuizTranslationToTerm, direction)
			return models.QuizCard{Prompt: "Fahrrad", Answer: "Velo", Kind: kind, Direction: direction}, nil
		},
	}

	h := newHandlerWithQuiz(t, quiz)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/quiz?kind=dialect&direction=translation_to_term", nil), 7)
	rec := httptest.NewRecorder()

	h.getQuizCard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var card models.QuizCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "Fahrrad", card.Prompt)
	assert.Equal(t, "Velo", card.Answer)
}

func TestGetQuizCard_EmptyCollection(t *testing.T) {
	quiz := &mockQuizService{
		cardFn: func(_ context.Context, _ int64, _ models.WordKind, _ models.QuizDirection) (models.QuizCard, error) {
			return models.QuizCard{Kind: models.WordKindStandard, Direction: models.QuizTermToTranslation, Empty: true}, nil
		},
	}

	h := newHandlerWithQuiz(t, quiz)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/quiz", nil), 7)
	rec := httptest.NewRecorder()

	h.getQuizCard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "an empty collection is a normal state, not an error")

	var card models.QuizCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.True(t, card.Empty)
}

func TestGetQuizCard_UnknownDirectionMapsTo400(t *testing.T) {
	quiz := &mockQuizService{
		cardFn: func(_ context.Context, _ int64, _ models.WordKind, _ models.QuizDirection) (models.QuizCard, error) {
			return models.QuizCard{}, service.ErrUnknownQuizDirection
		},
	}

	h := newHandlerWithQuiz(t, quiz)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/quiz?direction=sideways", nil), 7)
	rec := httptest.NewRecorder()

	h.getQuizCard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuizCard_NoUserInContext(t *testing.T) {
	h := newHandlerWithQuiz(t, &mockQuizService{})
	req := httptest.NewRequest(http.MethodGet, "/api/quiz", nil)
	rec := httptest.NewRecorder()

	h.getQuizCard(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
