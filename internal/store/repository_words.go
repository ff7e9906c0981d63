package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/models"
)

// wordRepository is the PostgreSQL-backed implementation of [WordRepository].
// It owns the dense per-(user, kind) position sequence of the "words" table.
//
// Serialisation: every operation that can move the position frontier (Insert,
// Delete+Resequence, BatchUpdate) runs in a transaction that first takes a
// pg_advisory_xact_lock keyed on (user, collection). The deferrable unique
// constraint on (user_id, kind, position) backstops the lock: a violation can
// only mean a writer bypassed the locking discipline.
type wordRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewWordRepository(db *DB, logger *logger.Logger) WordRepository {
	logger.Debug().Msg("creating word repository")
	return &wordRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new word entry at position MAX+1 (1 for an empty
// collection). The position is computed by the INSERT itself, so the read
// and the write cannot be split by a concurrent insert holding the same
// collection lock.
//
// Returns the record with server-assigned ID, Position and CreatedAt.
func (r *wordRepository) Insert(ctx context.Context, word models.Word) (models.Word, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.Insert").Msg("failed to begin transaction")
		return models.Word{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(word.UserID), wordCollectionCode(word.Kind)); err != nil {
		log.Err(err).Str("func", "*wordRepository.Insert").Int64("user_id", word.UserID).Msg("failed to acquire collection lock")
		return models.Word{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	row := tx.QueryRowContext(ctx, insertWord,
		word.UserID,
		word.Kind,
		word.Term,
		word.Translation,
		word.SecondaryTranslation,
	)

	if err := row.Scan(&word.ID, &word.Position, &word.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*wordRepository.Insert").
			Int64("user_id", word.UserID).
			Str("kind", string(word.Kind)).
			Msg("failed to insert word")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Word{}, fmt.Errorf("position conflict on insert: %w", err)
		}
		return models.Word{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*wordRepository.Insert").Msg("failed to commit transaction")
		return models.Word{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return word, nil
}

// GetAll returns the user's collection ordered by position ascending.
// Returns an empty slice when the user has no records.
func (r *wordRepository) GetAll(ctx context.Context, userID int64, kind models.WordKind) ([]models.Word, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWordsQuery(userID, kind)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.GetAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*wordRepository.GetAll").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Msg("failed to query words")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	words := make([]models.Word, 0, 50)

	for rows.Next() {
		var word models.Word
		if err := scanWord(rows, &word); err != nil {
			log.Err(err).Str("func", "*wordRepository.GetAll").Int64("user_id", userID).Msg("failed to scan word row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*wordRepository.GetAll").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return words, nil
}

// UpdateField sets exactly one allow-listed field on a record owned by the
// given user. Position and ownership are never touched, whichever field is
// named. Writing a value equal to the current one is a successful no-op.
//
// Errors:
//   - field outside the collection's allow-list → [ErrInvalidField];
//   - record absent or owned by another user → [ErrRecordNotFound].
func (r *wordRepository) UpdateField(ctx context.Context, userID, recordID int64, kind models.WordKind, field, value string) (models.Word, error) {
	log := logger.FromContext(ctx)

	column, ok := wordColumn(kind, field)
	if !ok {
		log.Warn().
			Str("func", "*wordRepository.UpdateField").
			Int64("user_id", userID).
			Str("field", field).
			Msg("field is not in the allow-list")
		return models.Word{}, ErrInvalidField
	}

	query, args, err := buildUpdateWordQuery(userID, recordID, kind, map[string]string{column: value})
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.UpdateField").Msg("failed to build update query")
		return models.Word{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var word models.Word
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanWord(row, &word); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*wordRepository.UpdateField").
				Int64("user_id", userID).
				Int64("record_id", recordID).
				Msg("record not found")
			return models.Word{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*wordRepository.UpdateField").Int64("record_id", recordID).Msg("failed to execute update query")
		return models.Word{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return word, nil
}

// BatchUpdate applies a set of per-record field maps inside one transaction.
// Only fields whose value differs from the stored one are written; if no
// record changes at all, the transaction is rolled back so no write occurs.
//
// Whatever the outcome, the full collection is reloaded with a fresh query
// and returned ordered by position, so callers re-render consistent state.
// The second return value reports whether anything was committed.
func (r *wordRepository) BatchUpdate(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) ([]models.Word, bool, error) {
	log := logger.FromContext(ctx)

	changed, err := r.applyBatch(ctx, userID, kind, updates)
	if err != nil {
		return nil, false, err
	}

	words, err := r.GetAll(ctx, userID, kind)
	if err != nil {
		return nil, changed, err
	}

	log.Debug().
		Str("func", "*wordRepository.BatchUpdate").
		Int64("user_id", userID).
		Int("updates_count", len(updates)).
		Bool("changed", changed).
		Msg("batch update finished")

	return words, changed, nil
}

func (r *wordRepository) applyBatch(ctx context.Context, userID int64, kind models.WordKind, updates []models.RecordUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	if len(updates) == 0 {
		return false, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.applyBatch").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(userID), wordCollectionCode(kind)); err != nil {
		log.Err(err).Str("func", "*wordRepository.applyBatch").Int64("user_id", userID).Msg("failed to acquire collection lock")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	changed := false

	for idx, update := range updates {
		var current models.Word
		row := tx.QueryRowContext(ctx, getWordForUpdate, update.RecordID, userID, kind)
		if err := scanWord(row, &current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn().
					Str("func", "*wordRepository.applyBatch").
					Int("iteration", idx+1).
					Int64("record_id", update.RecordID).
					Msg("record not found")
				return false, ErrRecordNotFound
			}
			return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		setClauses, err := changedWordColumns(kind, current, update.Fields)
		if err != nil {
			return false, err
		}
		if len(setClauses) == 0 {
			continue
		}

		query, args, err := buildUpdateWordQuery(userID, update.RecordID, kind, setClauses)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var updated models.Word
		if err := scanWord(tx.QueryRowContext(ctx, query, args...), &updated); err != nil {
			log.Err(err).
				Str("func", "*wordRepository.applyBatch").
				Int("iteration", idx+1).
				Int64("record_id", update.RecordID).
				Msg("failed to execute update query")
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		changed = true
	}

	// Nothing differed from the stored state: roll back via the deferred
	// Rollback so the no-change contract (no commit) is observable.
	if !changed {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*wordRepository.applyBatch").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

// changedWordColumns maps the submitted field values onto table columns,
// keeping only those that differ from the stored record.
func changedWordColumns(kind models.WordKind, current models.Word, fields map[string]string) (map[string]string, error) {
	stored := map[string]string{
		"term":                  current.Term,
		"translation":           current.Translation,
		"secondary_translation": current.SecondaryTranslation,
	}

	setClauses := make(map[string]string, len(fields))
	for field, value := range fields {
		column, ok := wordColumn(kind, field)
		if !ok {
			return nil, ErrInvalidField
		}
		if stored[column] != value {
			setClauses[column] = value
		}
	}

	return setClauses, nil
}

// Delete removes a record owned by the given user and renumbers the
// survivors inside the same transaction.
//
// A record that is absent or owned by another user yields [ErrRecordNotFound]
// and no resequencing: no row is mutated on that path.
func (r *wordRepository) Delete(ctx context.Context, userID, recordID int64, kind models.WordKind) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(userID), wordCollectionCode(kind)); err != nil {
		log.Err(err).Str("func", "*wordRepository.Delete").Int64("user_id", userID).Msg("failed to acquire collection lock")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteWord, recordID, userID, kind)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.Delete").Int64("record_id", recordID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*wordRepository.Delete").
			Int64("user_id", userID).
			Int64("record_id", recordID).
			Msg("record not found")
		return ErrRecordNotFound
	}

	if err := r.resequenceInTx(ctx, tx, userID, kind); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*wordRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*wordRepository.Delete").
		Int64("user_id", userID).
		Int64("record_id", recordID).
		Str("kind", string(kind)).
		Msg("deleted word and resequenced collection")

	return nil
}

// Resequence renumbers the user's collection to a dense 1..N in creation
// order. It is idempotent: a second call with no intervening insert or
// delete updates zero rows.
func (r *wordRepository) Resequence(ctx context.Context, userID int64, kind models.WordKind) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.Resequence").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(userID), wordCollectionCode(kind)); err != nil {
		log.Err(err).Str("func", "*wordRepository.Resequence").Int64("user_id", userID).Msg("failed to acquire collection lock")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := r.resequenceInTx(ctx, tx, userID, kind); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*wordRepository.Resequence").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// resequenceInTx renumbers inside an already-open transaction. The unique
// position constraint is deferred first: the renumbering statement may move
// several rows through each other's positions before the end of the
// transaction.
func (r *wordRepository) resequenceInTx(ctx context.Context, tx *sql.Tx, userID int64, kind models.WordKind) error {
	log := logger.FromContext(ctx)

	if _, err := tx.ExecContext(ctx, deferWordPositions); err != nil {
		log.Err(err).Str("func", "*wordRepository.resequenceInTx").Msg("failed to defer position constraint")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, resequenceWords, userID, kind); err != nil {
		log.Err(err).
			Str("func", "*wordRepository.resequenceInTx").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Msg("failed to resequence collection")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Random draws one record uniformly at random. The sampling happens in the
// database; the collection is never loaded into memory.
//
// Returns [ErrEmptyCollection] when the user has no records of this kind.
func (r *wordRepository) Random(ctx context.Context, userID int64, kind models.WordKind) (models.Word, error) {
	log := logger.FromContext(ctx)

	var word models.Word
	row := r.db.QueryRowContext(ctx, randomWord, userID, kind)
	if err := scanWord(row, &word); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, ErrEmptyCollection
		}

		log.Err(err).Str("func", "*wordRepository.Random").Int64("user_id", userID).Msg("failed to sample random word")
		return models.Word{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return word, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner, word *models.Word) error {
	return row.Scan(
		&word.ID,
		&word.UserID,
		&word.Kind,
		&word.Position,
		&word.Term,
		&word.Translation,
		&word.SecondaryTranslation,
		&word.CreatedAt,
	)
}
