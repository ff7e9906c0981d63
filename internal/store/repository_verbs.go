package store

import (
	"context"
	"fmt"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/models"
)

// verbRepository serves the global irregular-verbs reference table. The
// table is read-only for the application; ReplaceAll exists solely for the
// bulk loader, which repopulates the table wholesale.
type verbRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVerbRepository(db *DB, logger *logger.Logger) VerbRepository {
	logger.Debug().Msg("creating verb repository")
	return &verbRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll returns every reference verb ordered by infinitive.
func (r *verbRepository) GetAll(ctx context.Context) ([]models.IrregularVerb, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllVerbs)
	if err != nil {
		log.Err(err).Str("func", "*verbRepository.GetAll").Msg("failed to query irregular verbs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	verbs := make([]models.IrregularVerb, 0, 200)

	for rows.Next() {
		var verb models.IrregularVerb
		if err := rows.Scan(
			&verb.ID,
			&verb.Infinitive,
			&verb.SecondaryInfinitive,
			&verb.Preterite,
			&verb.Participle,
			&verb.Translation,
		); err != nil {
			log.Err(err).Str("func", "*verbRepository.GetAll").Msg("failed to scan verb row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		verbs = append(verbs, verb)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*verbRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return verbs, nil
}

// ReplaceAll swaps the whole table for the provided rows inside a single
// transaction using a prepared statement. A failure on any row rolls the
// table back to its previous content.
func (r *verbRepository) ReplaceAll(ctx context.Context, verbs []models.IrregularVerb) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*verbRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllVerbs); err != nil {
		log.Err(err).Str("func", "*verbRepository.ReplaceAll").Msg("failed to clear irregular verbs")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertVerb)
	if err != nil {
		log.Err(err).Str("func", "*verbRepository.ReplaceAll").Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, verb := range verbs {
		if _, err := stmt.ExecContext(ctx,
			verb.Infinitive,
			verb.SecondaryInfinitive,
			verb.Preterite,
			verb.Participle,
			verb.Translation,
		); err != nil {
			log.Err(err).
				Str("func", "*verbRepository.ReplaceAll").
				Int("iteration", idx+1).
				Str("infinitive", verb.Infinitive).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*verbRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*verbRepository.ReplaceAll").
		Int("count", len(verbs)).
		Msg("reloaded irregular verbs table")

	return nil
}
