package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/store"
	"github.com/mikas-m/wortschatz/models"
)

// quizService builds flashcards from words drawn uniformly at random by the
// word repository.
type quizService struct {
	wordRepository store.WordRepository
	logger         *logger.Logger
}

func NewQuizService(wordRepository store.WordRepository, logger *logger.Logger) QuizService {
	return &quizService{
		wordRepository: wordRepository,
		logger:         logger,
	}
}

// Card draws one random word from the user's collection and shapes it into a
// flashcard for the requested direction. An empty kind or direction falls
// back to the standard collection and term-to-translation.
//
// A user with no words gets a card with Empty set and no error: an empty
// collection is a normal state, not a failure.
func (s *quizService) Card(ctx context.Context, userID int64, kind models.WordKind, direction models.QuizDirection) (models.QuizCard, error) {
	log := logger.FromContext(ctx)

	kind, err := normalizeKind(kind)
	if err != nil {
		return models.QuizCard{}, err
	}

	direction, err = normalizeDirection(direction)
	if err != nil {
		return models.QuizCard{}, err
	}

	word, err := s.wordRepository.Random(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, store.ErrEmptyCollection) {
			return models.QuizCard{Direction: direction, Kind: kind, Empty: true}, nil
		}

		log.Err(err).Int64("user_id", userID).Str("kind", string(kind)).Msg("drawing quiz card ended with error")
		return models.QuizCard{}, fmt.Errorf("drawing quiz card ended with error: %w", err)
	}

	card := models.QuizCard{Direction: direction, Kind: kind}
	translation := word.Translation
	if word.SecondaryTranslation != "" {
		translation = word.Translation + " / " + word.SecondaryTranslation
	}

	if direction == models.QuizTranslationToTerm {
		card.Prompt = translation
		card.Answer = word.Term
	} else {
		card.Prompt = word.Term
		card.Answer = translation
	}

	return card, nil
}

func normalizeDirection(direction models.QuizDirection) (models.QuizDirection, error) {
	if direction == "" {
		return models.QuizTermToTranslation, nil
	}
	if !direction.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuizDirection, direction)
	}
	return direction, nil
}
