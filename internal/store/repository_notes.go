package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Notes follow the same position contract as words: delete renumbers the
// survivors in the same transaction, so the two collections behave
// symmetrically.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new note at position MAX+1 (1 for an empty collection).
func (r *noteRepository) Insert(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Insert").Msg("failed to begin transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(note.UserID), lockNotes); err != nil {
		log.Err(err).Str("func", "*noteRepository.Insert").Int64("user_id", note.UserID).Msg("failed to acquire collection lock")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	row := tx.QueryRowContext(ctx, insertNote, note.UserID, note.Title, note.Body)
	if err := row.Scan(&note.ID, &note.Position, &note.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.Insert").Int64("user_id", note.UserID).Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.Insert").Msg("failed to commit transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return note, nil
}

// GetAll returns the user's notes ordered by position ascending.
func (r *noteRepository) GetAll(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.list(ctx, userID, false)
}

// ListRecent returns the user's notes newest first, the default display
// order of the notes page.
func (r *noteRepository) ListRecent(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.list(ctx, userID, true)
}

func (r *noteRepository) list(ctx context.Context, userID int64, newestFirst bool) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(userID, newestFirst)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.list").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.list").Int64("user_id", userID).Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note
		if err := scanNote(rows, &note); err != nil {
			log.Err(err).Str("func", "*noteRepository.list").Int64("user_id", userID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.list").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateField sets exactly one allow-listed field (title or body) on a note
// owned by the given user. Position and ownership are never touched.
func (r *noteRepository) UpdateField(ctx context.Context, userID, recordID int64, field, value string) (models.Note, error) {
	log := logger.FromContext(ctx)

	column, ok := noteColumns[field]
	if !ok {
		log.Warn().
			Str("func", "*noteRepository.UpdateField").
			Int64("user_id", userID).
			Str("field", field).
			Msg("field is not in the allow-list")
		return models.Note{}, ErrInvalidField
	}

	query, args, err := buildUpdateNoteQuery(userID, recordID, map[string]string{column: value})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateField").Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*noteRepository.UpdateField").
				Int64("user_id", userID).
				Int64("record_id", recordID).
				Msg("record not found")
			return models.Note{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateField").Int64("record_id", recordID).Msg("failed to execute update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// BatchUpdate mirrors the word collection's batch save: changed fields only,
// one transaction, no commit when nothing changed, and a fresh reload of the
// collection either way.
func (r *noteRepository) BatchUpdate(ctx context.Context, userID int64, updates []models.RecordUpdate) ([]models.Note, bool, error) {
	changed, err := r.applyBatch(ctx, userID, updates)
	if err != nil {
		return nil, false, err
	}

	notes, err := r.GetAll(ctx, userID)
	if err != nil {
		return nil, changed, err
	}

	return notes, changed, nil
}

func (r *noteRepository) applyBatch(ctx context.Context, userID int64, updates []models.RecordUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	if len(updates) == 0 {
		return false, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.applyBatch").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(userID), lockNotes); err != nil {
		log.Err(err).Str("func", "*noteRepository.applyBatch").Int64("user_id", userID).Msg("failed to acquire collection lock")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	changed := false

	for idx, update := range updates {
		var current models.Note
		row := tx.QueryRowContext(ctx, getNoteForUpdate, update.RecordID, userID)
		if err := scanNote(row, &current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn().
					Str("func", "*noteRepository.applyBatch").
					Int("iteration", idx+1).
					Int64("record_id", update.RecordID).
					Msg("record not found")
				return false, ErrRecordNotFound
			}
			return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		setClauses, err := changedNoteColumns(current, update.Fields)
		if err != nil {
			return false, err
		}
		if len(setClauses) == 0 {
			continue
		}

		query, args, err := buildUpdateNoteQuery(userID, update.RecordID, setClauses)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var updated models.Note
		if err := scanNote(tx.QueryRowContext(ctx, query, args...), &updated); err != nil {
			log.Err(err).
				Str("func", "*noteRepository.applyBatch").
				Int("iteration", idx+1).
				Int64("record_id", update.RecordID).
				Msg("failed to execute update query")
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		changed = true
	}

	if !changed {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.applyBatch").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

func changedNoteColumns(current models.Note, fields map[string]string) (map[string]string, error) {
	stored := map[string]string{
		"title": current.Title,
		"body":  current.Body,
	}

	setClauses := make(map[string]string, len(fields))
	for field, value := range fields {
		column, ok := noteColumns[field]
		if !ok {
			return nil, ErrInvalidField
		}
		if stored[column] != value {
			setClauses[column] = value
		}
	}

	return setClauses, nil
}

// Delete removes a note owned by the given user and renumbers the survivors
// inside the same transaction.
func (r *noteRepository) Delete(ctx context.Context, userID, recordID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(userID), lockNotes); err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Int64("user_id", userID).Msg("failed to acquire collection lock")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteNote, recordID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Int64("record_id", recordID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*noteRepository.Delete").
			Int64("user_id", userID).
			Int64("record_id", recordID).
			Msg("record not found")
		return ErrRecordNotFound
	}

	if err := r.resequenceInTx(ctx, tx, userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Resequence renumbers the user's notes to a dense 1..N in creation order.
func (r *noteRepository) Resequence(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Resequence").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, collectionLock, int32(userID), lockNotes); err != nil {
		log.Err(err).Str("func", "*noteRepository.Resequence").Int64("user_id", userID).Msg("failed to acquire collection lock")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := r.resequenceInTx(ctx, tx, userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.Resequence").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *noteRepository) resequenceInTx(ctx context.Context, tx *sql.Tx, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := tx.ExecContext(ctx, deferNotePositions); err != nil {
		log.Err(err).Str("func", "*noteRepository.resequenceInTx").Msg("failed to defer position constraint")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, resequenceNotes, userID); err != nil {
		log.Err(err).Str("func", "*noteRepository.resequenceInTx").Int64("user_id", userID).Msg("failed to resequence collection")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(
		&note.ID,
		&note.UserID,
		&note.Position,
		&note.Title,
		&note.Body,
		&note.CreatedAt,
	)
}
