package service

import (
	"github.com/mikas-m/wortschatz/internal/config"
	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/store"
)

type Services struct {
	AuthService AuthService
	WordService WordService
	NoteService NoteService
	QuizService QuizService
	VerbService VerbService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		WordService: NewWordService(storages.WordRepository, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
		QuizService: NewQuizService(storages.WordRepository, logger),
		VerbService: NewVerbService(storages.VerbRepository, logger),
	}
}
