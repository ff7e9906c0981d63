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

func newHandlerWithNotes(t *testing.T, notes service.NoteService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{NoteService: notes})
}

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNoteService{
		createFn: func(_ context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
			assert.Equal(t, int64(7), userID)
			return models.Note{ID: 3, Position: 1, Title: req.Title, Body: req.Body}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := `{"title":"Grammatik","body":"Dativ nach 'mit'"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(3), created.ID)
}

func TestListNotes_DefaultOrderIsByPosition(t *testing.T) {
	listCalled := false
	notes := &mockNoteService{
		listFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			listCalled = true
			assert.Equal(t, int64(7), userID)
			return []models.Note{{ID: 1, Position: 1}}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/notes", nil), 7)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, listCalled)
}

func TestListNotes_RecentOrder(t *testing.T) {
	recentCalled := false
	notes := &mockNoteService{
		listRecentFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			recentCalled = true
			return []models.Note{{ID: 2}, {ID: 1}}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/notes?order=recent", nil), 7)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, recentCalled)
}

func TestUpdateNoteField_Success(t *testing.T) {
	notes := &mockNoteService{
		updateFieldFn: func(_ context.Context, userID, recordID int64, patch models.FieldUpdate) (models.Note, error) {
			assert.Equal(t, int64(3), recordID)
			assert.Equal(t, "body", patch.Field)
			return models.Note{ID: 3, Body: patch.Value}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := `{"field":"body","value":"rewritten"}`
	req := asUser(httptest.NewRequest(http.MethodPatch, "/api/notes/3", strings.NewReader(body)), 7)
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h.updateNoteField(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AjaxResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "rewritten", resp.Note.Body)
}

func TestUpdateNoteField_InvalidRecordID(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := asUser(httptest.NewRequest(http.MethodPatch, "/api/notes/0", strings.NewReader(`{}`)), 7)
	req = withURLParam(req, "id", "0")
	rec := httptest.NewRecorder()

	h.updateNoteField(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchUpdateNotes_Success(t *testing.T) {
	notes := &mockNoteService{
		batchUpdateFn: func(_ context.Context, _ int64, updates []models.RecordUpdate) ([]models.Note, bool, error) {
			require.Len(t, updates, 1)
			return []models.Note{{ID: 3, Position: 1, Body: "new"}}, true, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := `{"updates":[{"record_id":3,"fields":{"body":"new"}}]}`
	req := asUser(httptest.NewRequest(http.MethodPut, "/api/notes", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.batchUpdateNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NoteListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)
	require.Len(t, resp.Notes, 1)
}

func TestDeleteNote_NotFoundMapsTo404(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrRecordNotFound
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/notes/99", nil), 7)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
