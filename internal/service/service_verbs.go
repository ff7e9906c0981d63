package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/store"
	"github.com/mikas-m/wortschatz/models"
)

const (
	maxVerbFormLen        = 100
	maxVerbTranslationLen = 255
)

// verbService serves the irregular-verbs reference table.
type verbService struct {
	verbRepository store.VerbRepository
	logger         *logger.Logger
}

func NewVerbService(verbRepository store.VerbRepository, logger *logger.Logger) VerbService {
	return &verbService{
		verbRepository: verbRepository,
		logger:         logger,
	}
}

// List returns every reference verb ordered by infinitive.
func (s *verbService) List(ctx context.Context) ([]models.IrregularVerb, error) {
	verbs, err := s.verbRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing irregular verbs ended with error: %w", err)
	}

	return verbs, nil
}

// Import validates the submitted rows and replaces the whole reference table
// with them. Returns the number of rows imported.
func (s *verbService) Import(ctx context.Context, verbs []models.IrregularVerb) (int, error) {
	log := logger.FromContext(ctx)

	cleaned := make([]models.IrregularVerb, 0, len(verbs))
	for idx, verb := range verbs {
		verb.Infinitive = strings.TrimSpace(verb.Infinitive)
		verb.SecondaryInfinitive = strings.TrimSpace(verb.SecondaryInfinitive)
		verb.Preterite = strings.TrimSpace(verb.Preterite)
		verb.Participle = strings.TrimSpace(verb.Participle)
		verb.Translation = strings.TrimSpace(verb.Translation)

		if err := validateVerb(verb); err != nil {
			log.Error().Int("row", idx+1).Str("infinitive", verb.Infinitive).Msg("invalid verb row provided")
			return 0, fmt.Errorf("verb row %d: %w", idx+1, err)
		}

		cleaned = append(cleaned, verb)
	}

	if err := s.verbRepository.ReplaceAll(ctx, cleaned); err != nil {
		log.Err(err).Int("count", len(cleaned)).Msg("verb import ended with error")
		return 0, fmt.Errorf("verb import ended with error: %w", err)
	}

	return len(cleaned), nil
}

func validateVerb(verb models.IrregularVerb) error {
	if err := validateFieldValue(verb.Infinitive, maxVerbFormLen); err != nil {
		return fmt.Errorf("infinitive: %w", err)
	}
	if err := validateFieldValue(verb.Preterite, maxVerbFormLen); err != nil {
		return fmt.Errorf("preterite: %w", err)
	}
	if err := validateFieldValue(verb.Participle, maxVerbFormLen); err != nil {
		return fmt.Errorf("participle: %w", err)
	}
	if err := validateFieldValue(verb.Translation, maxVerbTranslationLen); err != nil {
		return fmt.Errorf("translation: %w", err)
	}

	// the secondary infinitive is optional but still bounded
	if verb.SecondaryInfinitive != "" {
		if err := validateFieldValue(verb.SecondaryInfinitive, maxVerbFormLen); err != nil {
			return fmt.Errorf("secondary_infinitive: %w", err)
		}
	}

	return nil
}
