package models

import "time"

// WordKind discriminates the two per-user word collections. Each kind has
// its own independent, dense 1..N position sequence.
type WordKind string

const (
	// WordKindStandard is the primary German word list: a (term, translation) pair.
	WordKindStandard WordKind = "standard"

	// WordKindDialect is the Schweiz dialect variant list: a
	// (term, translation, secondary translation) triple.
	WordKindDialect WordKind = "dialect"
)

// Valid reports whether k names one of the known word collections.
func (k WordKind) Valid() bool {
	return k == WordKindStandard || k == WordKindDialect
}

// Word is a single vocabulary entry owned by one user.
//
// Position is the user-facing display ordinal: dense, 1-based, and scoped to
// the (owner, kind) collection. It is assigned on insert as MAX+1 and
// restored to density by resequencing after every deletion. ID is the
// immutable storage identifier and is distinct from Position.
type Word struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"-"`
	Kind                 WordKind  `json:"kind"`
	Position             int       `json:"position"`
	Term                 string    `json:"term"`
	Translation          string    `json:"translation"`
	SecondaryTranslation string    `json:"secondary_translation,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Word model.
func (w Word) TableName() string {
	return "words"
}
