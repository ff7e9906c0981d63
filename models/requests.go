package models

// CreateWordRequest is the body of a word insert. Kind defaults to the
// standard collection when empty.
type CreateWordRequest struct {
	Kind                 WordKind `json:"kind"`
	Term                 string   `json:"term"`
	Translation          string   `json:"translation"`
	SecondaryTranslation string   `json:"secondary_translation"`
}

// CreateNoteRequest is the body of a note insert.
type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FieldUpdate is a single-field patch applied to one record. The field name
// is matched against a per-collection allow-list before any SQL is built;
// names outside the list are rejected.
type FieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// RecordUpdate is one element of a batch update: the record it targets plus
// the field values as rendered on the caller's side. Fields equal to the
// stored values are skipped, so resubmitting an unchanged form writes
// nothing.
//
// Carrying the record id explicitly replaces the older scheme of encoding it
// into form field names, which broke on ids adjacent to underscores.
type RecordUpdate struct {
	RecordID int64             `json:"record_id"`
	Fields   map[string]string `json:"fields"`
}

// BatchUpdateRequest is the body of a whole-collection save.
type BatchUpdateRequest struct {
	Kind    WordKind       `json:"kind,omitempty"`
	Updates []RecordUpdate `json:"updates"`
}
