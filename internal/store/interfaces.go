package store

import (
	"context"

	"github.com/mikas-m/wortschatz/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// WordRepository persists the two per-user ordered word collections.
//
// Position invariant: for a fixed (user, kind) pair the set of positions of
// live records is exactly {1..N}. Insert assigns MAX+1 atomically with the
// write; Delete renumbers the survivors in the same transaction. Insert,
// Delete and BatchUpdate serialise per (user, kind) via a transaction-scoped
// advisory lock so concurrent calls cannot produce duplicate or gapped
// positions.
type WordRepository interface {
	Insert(ctx context.Context, word models.Word) (models.Word, error)
	GetAll(ctx context.Context, userID int64, kind models.WordKind) ([]models.Word, error)
	UpdateField(ctx context.Context, userID, recordID int64, kind models.WordKind, field, value string) (models.Word, error)
	BatchUpdate(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error)
	Delete(ctx context.Context, userID, recordID int64, kind models.WordKind) error
	Resequence(ctx context.Context, userID int64, kind models.WordKind) error
	Random(ctx context.Context, userID int64, kind models.WordKind) (models.Word, error)
}

// NoteRepository persists the per-user notes collection under the same
// position contract as WordRepository.
type NoteRepository interface {
	Insert(ctx context.Context, note models.Note) (models.Note, error)
	GetAll(ctx context.Context, userID int64) ([]models.Note, error)
	ListRecent(ctx context.Context, userID int64) ([]models.Note, error)
	UpdateField(ctx context.Context, userID, recordID int64, field, value string) (models.Note, error)
	BatchUpdate(ctx context.Context, userID int64, updates []models.RecordUpdate) ([]models.Note, bool, error)
	Delete(ctx context.Context, userID, recordID int64) error
	Resequence(ctx context.Context, userID int64) error
}

// VerbRepository serves the global irregular-verbs reference table.
// ReplaceAll is the only write path and exists for the bulk loader.
type VerbRepository interface {
	GetAll(ctx context.Context) ([]models.IrregularVerb, error)
	ReplaceAll(ctx context.Context, verbs []models.IrregularVerb) error
}
