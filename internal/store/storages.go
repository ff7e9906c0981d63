package store

import "github.com/mikas-m/wortschatz/internal/logger"

type Storages struct {
	UserRepository UserRepository
	WordRepository WordRepository
	NoteRepository NoteRepository
	VerbRepository VerbRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		WordRepository: NewWordRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
		VerbRepository: NewVerbRepository(db, logger),
	}
}
