package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/service"
	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockWordService implements service.WordService for unit tests.
type mockWordService struct {
	createFn      func(ctx context.Context, userID int64, req models.CreateWordRequest) (models.Word, error)
	listFn        func(ctx context.Context, userID int64, kind models.WordKind) ([]models.Word, error)
	updateFieldFn func(ctx context.Context, userID, recordID int64, kind models.WordKind, patch models.FieldUpdate) (models.Word, error)
	batchUpdateFn func(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error)
	deleteFn      func(ctx context.Context, userID, recordID int64, kind models.WordKind) error
}

func (m *mockWordService) Create(ctx context.Context, userID int64, req models.CreateWordRequest) (models.Word, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockWordService) List(ctx context.Context, userID int64, kind models.WordKind) ([]models.Word, error) {
	return m.listFn(ctx, userID, kind)
}

func (m *mockWordService) UpdateField(ctx context.Context, userID, recordID int64, kind models.WordKind, patch models.FieldUpdate) (models.Word, error) {
	return m.updateFieldFn(ctx, userID, recordID, kind, patch)
}

func (m *mockWordService) BatchUpdate(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error) {
	return m.batchUpdateFn(ctx, userID, kind, updates)
}

func (m *mockWordService) Delete(ctx context.Context, userID, recordID int64, kind models.WordKind) error {
	return m.deleteFn(ctx, userID, recordID, kind)
}

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createFn      func(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error)
	listFn        func(ctx context.Context, userID int64) ([]models.Note, error)
	listRecentFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	updateFieldFn func(ctx context.Context, userID, recordID int64, patch models.FieldUpdate) (models.Note, error)
	batchUpdateFn func(ctx context.Context, userID int64, updates []models.RecordUpdate) ([]models.Note, bool, error)
	deleteFn      func(ctx context.Context, userID, recordID int64) error
}

func (m *mockNoteService) Create(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockNoteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listFn(ctx, userID)
}

func (m *mockNoteService) ListRecent(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listRecentFn(ctx, userID)
}

func (m *mockNoteService) UpdateField(ctx context.Context, userID, recordID int64, patch models.FieldUpdate) (models.Note, error) {
	return m.updateFieldFn(ctx, userID, recordID, patch)
}

func (m *mockNoteService) BatchUpdate(ctx context.Context, userID int64, updates []models.RecordUpdate) ([]models.Note, bool, error) {
	return m.batchUpdateFn(ctx, userID, updates)
}

func (m *mockNoteService) Delete(ctx context.Context, userID, recordID int64) error {
	return m.deleteFn(ctx, userID, recordID)
}

// mockQuizService implements service.QuizService for unit tests.
type mockQuizService struct {
	cardFn func(ctx context.Context, userID int64, kind models.WordKind, direction models.QuizDirection) (models.QuizCard, error)
}

func (m *mockQuizService) Card(ctx context.Context, userID int64, kind models.WordKind, direction models.QuizDirection) (models.QuizCard, error) {
	return m.cardFn(ctx, userID, kind, direction)
}

// mockVerbService implements service.VerbService for unit tests.
type mockVerbService struct {
	listFn   func(ctx context.Context) ([]models.IrregularVerb, error)
	importFn func(ctx context.Context, verbs []models.IrregularVerb) (int, error)
}

func (m *mockVerbService) List(ctx context.Context) ([]models.IrregularVerb, error) {
	return m.listFn(ctx)
}

func (m *mockVerbService) Import(ctx context.Context, verbs []models.IrregularVerb) (int, error) {
	return m.importFn(ctx, verbs)
}

// newTestHandler builds a Handler around the given service mocks.
// Nil mocks are fine as long as the test never reaches them.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, "test", logger.Nop())
}

// asUser returns r with userID stored in the context the same way the auth
// middleware does it.
func asUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// withURLParam returns r with a chi route parameter injected, so that
// handlers reading chi.URLParam can be exercised without a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
