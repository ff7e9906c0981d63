package models

// IrregularVerb is a row of the global irregular-verbs reference table.
// The table is not per-user: it is read-only from the application's point of
// view and repopulated wholesale by the bulk loader.
type IrregularVerb struct {
	ID                  int64  `json:"id"`
	Infinitive          string `json:"infinitive"`
	SecondaryInfinitive string `json:"secondary_infinitive,omitempty"`
	Preterite           string `json:"preterite"`
	Participle          string `json:"participle"`
	Translation         string `json:"translation"`
}

// TableName returns the name of the database table
// associated with the IrregularVerb model.
func (v IrregularVerb) TableName() string {
	return "irregular_verbs"
}
