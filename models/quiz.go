package models

// QuizDirection selects which side of a word entry is shown as the prompt.
type QuizDirection string

const (
	// QuizTermToTranslation prompts with the German term and expects the translation.
	QuizTermToTranslation QuizDirection = "term_to_translation"

	// QuizTranslationToTerm prompts with the translation and expects the German term.
	QuizTranslationToTerm QuizDirection = "translation_to_term"
)

// Valid reports whether d is a known quiz direction.
func (d QuizDirection) Valid() bool {
	return d == QuizTermToTranslation || d == QuizTranslationToTerm
}

// QuizCard is one flashcard drawn uniformly at random from a user's word
// collection.
//
// Empty is the "no data" sentinel: a user with no words gets an empty card
// with Empty set, never an error — an empty collection is a normal state.
type QuizCard struct {
	Prompt    string        `json:"prompt"`
	Answer    string        `json:"answer"`
	Direction QuizDirection `json:"direction"`
	Kind      WordKind      `json:"kind"`
	Empty     bool          `json:"empty"`
}
