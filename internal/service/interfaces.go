package service

import (
	"context"

	"github.com/mikas-m/wortschatz/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// WordService owns the two per-user ordered word collections: validation of
// inbound data plus delegation to the word repository.
type WordService interface {
	Create(ctx context.Context, userID int64, req models.CreateWordRequest) (models.Word, error)
	List(ctx context.Context, userID int64, kind models.WordKind) ([]models.Word, error)
	UpdateField(ctx context.Context, userID, recordID int64, kind models.WordKind, patch models.FieldUpdate) (models.Word, error)
	BatchUpdate(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error)
	Delete(ctx context.Context, userID, recordID int64, kind models.WordKind) error
}

// NoteService is the notes counterpart of WordService.
type NoteService interface {
	Create(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error)
	List(ctx context.Context, userID int64) ([]models.Note, error)
	ListRecent(ctx context.Context, userID int64) ([]models.Note, error)
	UpdateField(ctx context.Context, userID, recordID int64, patch models.FieldUpdate) (models.Note, error)
	BatchUpdate(ctx context.Context, userID int64, updates []models.RecordUpdate) ([]models.Note, bool, error)
	Delete(ctx context.Context, userID, recordID int64) error
}

// QuizService draws random flashcards from a user's word collections.
type QuizService interface {
	Card(ctx context.Context, userID int64, kind models.WordKind, direction models.QuizDirection) (models.QuizCard, error)
}

// VerbService serves the irregular-verbs reference table and its bulk import.
type VerbService interface {
	List(ctx context.Context) ([]models.IrregularVerb, error)
	Import(ctx context.Context, verbs []models.IrregularVerb) (int, error)
}
