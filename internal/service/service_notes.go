package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/store"
	"github.com/mikas-m/wortschatz/models"
)

// Note field bounds; title matches the column width, body is free text with a
// sanity cap.
const (
	maxNoteTitleLen = 200
	maxNoteBodyLen  = 10000
)

// noteService mirrors wordService for the per-user notes collection.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// Create validates the request and appends a new note to the user's
// collection.
func (s *noteService) Create(ctx context.Context, userID int64, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := models.Note{
		UserID: userID,
		Title:  strings.TrimSpace(req.Title),
		Body:   strings.TrimSpace(req.Body),
	}

	if err := validateFieldValue(note.Title, maxNoteTitleLen); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid note title provided")
		return models.Note{}, fmt.Errorf("title: %w", err)
	}
	if err := validateFieldValue(note.Body, maxNoteBodyLen); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid note body provided")
		return models.Note{}, fmt.Errorf("body: %w", err)
	}

	created, err := s.noteRepository.Insert(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// List returns the user's notes ordered by position ascending.
func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.GetAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

// ListRecent returns the user's notes newest first.
func (s *noteService) ListRecent(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.ListRecent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

func noteFieldLimit(field string) int {
	if field == "title" {
		return maxNoteTitleLen
	}
	return maxNoteBodyLen
}

// UpdateField applies a single-field patch to one note.
func (s *noteService) UpdateField(ctx context.Context, userID, recordID int64, patch models.FieldUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	value := strings.TrimSpace(patch.Value)
	if err := validateFieldValue(value, noteFieldLimit(patch.Field)); err != nil {
		log.Error().Int64("user_id", userID).Str("field", patch.Field).Msg("invalid field value provided")
		return models.Note{}, err
	}

	note, err := s.noteRepository.UpdateField(ctx, userID, recordID, patch.Field, value)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("note field update ended with error")
		return models.Note{}, fmt.Errorf("note field update ended with error: %w", err)
	}

	return note, nil
}

// BatchUpdate validates every submitted value, then delegates the
// changed-fields-only transaction to the repository.
func (s *noteService) BatchUpdate(ctx context.Context, userID int64, updates []models.RecordUpdate) ([]models.Note, bool, error) {
	log := logger.FromContext(ctx)

	trimmed := make([]models.RecordUpdate, 0, len(updates))
	for _, update := range updates {
		fields := make(map[string]string, len(update.Fields))
		for field, value := range update.Fields {
			value = strings.TrimSpace(value)
			if err := validateFieldValue(value, noteFieldLimit(field)); err != nil {
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

	notes, changed, err := s.noteRepository.BatchUpdate(ctx, userID, trimmed)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note batch update ended with error")
		return nil, false, fmt.Errorf("note batch update ended with error: %w", err)
	}

	return notes, changed, nil
}

// Delete removes one note; the repository renumbers the survivors in the same
// transaction.
func (s *noteService) Delete(ctx context.Context, userID, recordID int64) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.Delete(ctx, userID, recordID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
