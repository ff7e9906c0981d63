package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikas-m/wortschatz/internal/service"
	"github.com/mikas-m/wortschatz/internal/store"
	"github.com/mikas-m/wortschatz/models"
)

func newHandlerWithWords(t *testing.T, words service.WordService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{WordService: words})
}

func TestCreateWord_Success(t *testing.T) {
	words := &mockWordService{
		createFn: func(_ context.Context, userID int64, req models.CreateWordRequest) (models.Word, error) {
			assert.Equal(t, int64(7), userID)
			return models.Word{ID: 10, Position: 1, Kind: models.WordKindStandard, Term: req.Term, Translation: req.Translation}, nil
		},
	}

	h := newHandlerWithWords(t, words)
	body := `{"term":"Haus","translation":"house"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.createWord(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, 1, created.Position)
}

func TestCreateWord_NoUserInContext(t *testing.T) {
	h := newHandlerWithWords(t, &mockWordService{})
	req := httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.createWord(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateWord_InvalidJSON(t *testing.T) {
	h := newHandlerWithWords(t, &mockWordService{})
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader("{broken")), 7)
	rec := httptest.NewRecorder()

	h.createWord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestCreateWord_ValidationErrorMapsTo400(t *testing.T) {
	words := &mockWordService{
		createFn: func(_ context.Context, _ int64, _ models.CreateWordRequest) (models.Word, error) {
			return models.Word{}, service.ErrValidationEmptyField
		},
	}

	h := newHandlerWithWords(t, words)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(`{"term":""}`)), 7)
	rec := httptest.NewRecorder()

	h.createWord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListWords_PassesKindFromQuery(t *testing.T) {
	words := &mockWordService{
		listFn: func(_ context.Context, userID int64, kind models.WordKind) ([]models.Word, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.WordKindDialect, kind)
			return []models.Word{{ID: 1, Position: 1, Term: "Velo"}}, nil
		},
	}

	h := newHandlerWithWords(t, words)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/words?kind=dialect", nil), 7)
	rec := httptest.NewRecorder()

	h.listWords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Velo", listed[0].Term)
}

func TestListWords_UnknownKindMapsTo400(t *testing.T) {
	words := &mockWordService{
		listFn: func(_ context.Context, _ int64, _ models.WordKind) ([]models.Word, error) {
			return nil, service.ErrUnknownWordKind
		},
	}

	h := newHandlerWithWords(t, words)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/words?kind=slang", nil), 7)
	rec := httptest.NewRecorder()

	h.listWords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateWordField_Success(t *testing.T) {
	words := &mockWordService{
		updateFieldFn: func(_ context.Context, userID, recordID int64, kind models.WordKind, patch models.FieldUpdate) (models.Word, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(5), recordID)
			assert.Equal(t, models.WordKindStandard, kind)
			assert.Equal(t, "translation", patch.Field)
			return models.Word{ID: 5, Translation: patch.Value}, nil
		},
	}

	h := newHandlerWithWords(t, words)
	body := `{"field":"translation","value":"building"}`
	req := asUser(httptest.NewRequest(http.MethodPatch, "/api/words/5?kind=standard", strings.NewReader(body)), 7)
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateWordField(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AjaxResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	require.NotNil(t, resp.Word)
	assert.Equal(t, "building", resp.Word.Translation)
}

func TestUpdateWordField_InvalidRecordID(t *testing.T) {
	h := newHandlerWithWords(t, &mockWordService{})
	req := asUser(httptest.NewRequest(http.MethodPatch, "/api/words/abc", strings.NewReader(`{}`)), 7)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.updateWordField(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid record id")
}

func TestUpdateWordField_DisallowedFieldMapsTo400(t *testing.T) {
	words := &mockWordService{
		updateFieldFn: func(_ context.Context, _, _ int64, _ models.WordKind, _ models.FieldUpdate) (models.Word, error) {
			return models.Word{}, store.ErrInvalidField
		},
	}

	h := newHandlerWithWords(t, words)
	body := `{"field":"position","value":"3"}`
	req := asUser(httptest.NewRequest(http.MethodPatch, "/api/words/5", strings.NewReader(body)), 7)
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateWordField(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateWordField_NotFoundMapsTo404(t *testing.T) {
	words := &mockWordService{
		updateFieldFn: func(_ context.Context, _, _ int64, _ models.WordKind, _ models.FieldUpdate) (models.Word, error) {
			return models.Word{}, store.ErrRecordNotFound
		},
	}

	h := newHandlerWithWords(t, words)
	body := `{"field":"term","value":"Haus"}`
	req := asUser(httptest.NewRequest(http.MethodPatch, "/api/words/99", strings.NewReader(body)), 7)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h.updateWordField(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBatchUpdateWords_Success(t *testing.T) {
	words := &mockWordService{
		batchUpdateFn: func(_ context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.WordKindStandard, kind)
			require.Len(t, updates, 1)
			assert.Equal(t, int64(5), updates[0].RecordID)
			return []models.Word{{ID: 5, Position: 1, Translation: "building"}}, true, nil
		},
	}

	h := newHandlerWithWords(t, words)
	body := `{"kind":"standard","updates":[{"record_id":5,"fields":{"translation":"building"}}]}`
	req := asUser(httptest.NewRequest(http.MethodPut, "/api/words", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.batchUpdateWords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.WordListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)
	require.Len(t, resp.Words, 1)
}

func TestBatchUpdateWords_NoChanges(t *testing.T) {
	words := &mockWordService{
		batchUpdateFn: func(_ context.Context, _ int64, _ models.WordKind, _ []models.RecordUpdate) ([]models.Word, bool, error) {
			return []models.Word{{ID: 5, Position: 1}}, false, nil
		},
	}

	h := newHandlerWithWords(t, words)
	body := `{"updates":[{"record_id":5,"fields":{"term":"Haus"}}]}`
	req := asUser(httptest.NewRequest(http.MethodPut, "/api/words", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.batchUpdateWords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.WordListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
}

func TestDeleteWord_Success(t *testing.T) {
	words := &mockWordService{
		deleteFn: func(_ context.Context, userID, recordID int64, kind models.WordKind) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(5), recordID)
			assert.Equal(t, models.WordKindDialect, kind)
			return nil
		},
	}

	h := newHandlerWithWords(t, words)
	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/words/5?kind=dialect", nil), 7)
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.deleteWord(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AjaxResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.True(t, resp.Reload, "positions shift after delete, caller must re-fetch")
}

func TestDeleteWord_NotFoundMapsTo404(t *testing.T) {
	words := &mockWordService{
		deleteFn: func(_ context.Context, _, _ int64, _ models.WordKind) error {
			return store.ErrRecordNotFound
		},
	}

	h := newHandlerWithWords(t, words)
	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/words/99", nil), 7)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h.deleteWord(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
