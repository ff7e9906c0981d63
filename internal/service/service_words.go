package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/store"
	"github.com/mikas-m/wortschatz/models"
)

// maxWordFieldLen bounds every word field; matches the column width.
const maxWordFieldLen = 100

// wordService is the concrete implementation of WordService. All position
// bookkeeping lives in the repository; this layer owns input validation and
// the per-kind field rules.
type wordService struct {
	wordRepository store.WordRepository
	logger         *logger.Logger
}

func NewWordService(wordRepository store.WordRepository, logger *logger.Logger) WordService {
	return &wordService{
		wordRepository: wordRepository,
		logger:         logger,
	}
}

// Create validates the request and appends a new entry to the user's
// collection. An empty kind defaults to the standard collection.
//
// Field rules:
//   - standard: term and translation required, secondary translation must be
//     absent;
//   - dialect: all three fields required.
func (s *wordService) Create(ctx context.Context, userID int64, req models.CreateWordRequest) (models.Word, error) {
	log := logger.FromContext(ctx)

	kind, err := normalizeKind(req.Kind)
	if err != nil {
		return models.Word{}, err
	}

	word := models.Word{
		UserID:               userID,
		Kind:                 kind,
		Term:                 strings.TrimSpace(req.Term),
		Translation:          strings.TrimSpace(req.Translation),
		SecondaryTranslation: strings.TrimSpace(req.SecondaryTranslation),
	}

	if err := validateWordFields(word); err != nil {
		log.Error().Int64("user_id", userID).Str("kind", string(kind)).Msg("invalid word data provided")
		return models.Word{}, err
	}

	created, err := s.wordRepository.Insert(ctx, word)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("word creation ended with error")
		return models.Word{}, fmt.Errorf("word creation ended with error: %w", err)
	}

	return created, nil
}

// List returns the user's collection ordered by position ascending.
func (s *wordService) List(ctx context.Context, userID int64, kind models.WordKind) ([]models.Word, error) {
	kind, err := normalizeKind(kind)
	if err != nil {
		return nil, err
	}

	words, err := s.wordRepository.GetAll(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("listing words ended with error: %w", err)
	}

	return words, nil
}

// UpdateField applies a single-field patch to one record. The value is
// trimmed and must be non-empty: clearing a field is not an edit the
// collection supports.
func (s *wordService) UpdateField(ctx context.Context, userID, recordID int64, kind models.WordKind, patch models.FieldUpdate) (models.Word, error) {
	log := logger.FromContext(ctx)

	kind, err := normalizeKind(kind)
	if err != nil {
		return models.Word{}, err
	}

	value := strings.TrimSpace(patch.Value)
	if err := validateFieldValue(value, maxWordFieldLen); err != nil {
		log.Error().Int64("user_id", userID).Str("field", patch.Field).Msg("invalid field value provided")
		return models.Word{}, err
	}

	word, err := s.wordRepository.UpdateField(ctx, userID, recordID, kind, patch.Field, value)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("word field update ended with error")
		return models.Word{}, fmt.Errorf("word field update ended with error: %w", err)
	}

	return word, nil
}

// BatchUpdate validates every submitted value, then delegates the
// changed-fields-only transaction to the repository. The returned collection
// is always a fresh position-ordered reload.
func (s *wordService) BatchUpdate(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error) {
	log := logger.FromContext(ctx)

	kind, err := normalizeKind(kind)
	if err != nil {
		return nil, false, err
	}

	trimmed := make([]models.RecordUpdate, 0, len(updates))
	for _, update := range updates {
		fields := make(map[string]string, len(update.Fields))
		for field, value := range update.Fields {
			value = strings.TrimSpace(value)
			if err := validateFieldValue(value, maxWordFieldLen); err != nil {
				log.Error().
					Int64("user_id", userID).
					Int64("record_id", update.RecordID).
					Str("field", field).
					Msg("invalid field value provided")
				return nil, false, err
			}
			fields[field] = value
		}
		trimmed = append(trimmed, models.RecordUpdate{RecordID: update.RecordID, Fields: fields})
	}

	words, changed, err := s.wordRepository.BatchUpdate(ctx, userID, kind, trimmed)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("word batch update ended with error")
		return nil, false, fmt.Errorf("word batch update ended with error: %w", err)
	}

	return words, changed, nil
}

// Delete removes one record; the repository renumbers the survivors in the
// same transaction.
func (s *wordService) Delete(ctx context.Context, userID, recordID int64, kind models.WordKind) error {
	log := logger.FromContext(ctx)

	kind, err := normalizeKind(kind)
	if err != nil {
		return err
	}

	if err := s.wordRepository.Delete(ctx, userID, recordID, kind); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("word deletion ended with error")
		return fmt.Errorf("word deletion ended with error: %w", err)
	}

	return nil
}

// normalizeKind defaults an empty kind to the standard collection and rejects
// anything outside the known set.
func normalizeKind(kind models.WordKind) (models.WordKind, error) {
	if kind == "" {
		return models.WordKindStandard, nil
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWordKind, kind)
	}
	return kind, nil
}

func validateWordFields(word models.Word) error {
	if err := validateFieldValue(word.Term, maxWordFieldLen); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := validateFieldValue(word.Translation, maxWordFieldLen); err != nil {
		return fmt.Errorf("translation: %w", err)
	}

	switch word.Kind {
	case models.WordKindDialect:
		if err := validateFieldValue(word.SecondaryTranslation, maxWordFieldLen); err != nil {
			return fmt.Errorf("secondary_translation: %w", err)
		}
	default:
		if word.SecondaryTranslation != "" {
			return fmt.Errorf("%w: secondary_translation is not part of the standard collection", ErrInvalidDataProvided)
		}
	}

	return nil
}

func validateFieldValue(value string, maxLen int) error {
	if value == "" {
		return ErrValidationEmptyField
	}
	if utf8.RuneCountInString(value) > maxLen {
		return ErrValidationValueTooLong
	}
	return nil
}
