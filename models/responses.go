package models

// AjaxResponse is the JSON shape returned to inline-edit and delete flows.
// Status distinguishes per-field save state so the page can mark a single
// cell saved or failed without a full reload; Reload tells the caller the
// collection was renumbered and must be re-fetched.
type AjaxResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
	Reload   bool   `json:"reload,omitempty"`
	Word     *Word  `json:"word,omitempty"`
	Note     *Note  `json:"note,omitempty"`
}

// Response statuses used by AJAX flows.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WordListResponse wraps a freshly loaded collection, ordered by position
// ascending, returned after batch saves so the caller re-renders consistent
// state instead of trusting its own copy.
type WordListResponse struct {
	Words   []Word `json:"words"`
	Changed bool   `json:"changed"`
}

// NoteListResponse is the notes counterpart of WordListResponse.
type NoteListResponse struct {
	Notes   []Note `json:"notes"`
	Changed bool   `json:"changed"`
}

// VerbImportResponse reports the outcome of a bulk irregular-verb import.
type VerbImportResponse struct {
	Imported int `json:"imported"`
}
