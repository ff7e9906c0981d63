package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/words", func(r chi.Router) {
			r.Get("/", h.listWords)
			r.Post("/", h.createWord)
			r.Put("/", h.batchUpdateWords)
			r.Patch("/{id}", h.updateWordField)
			r.Delete("/{id}", h.deleteWord)
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Put("/", h.batchUpdateNotes)
			r.Patch("/{id}", h.updateNoteField)
			r.Delete("/{id}", h.deleteNote)
		})

		r.Get("/api/quiz", h.getQuizCard)

		r.Route("/api/verbs", func(r chi.Router) {
			r.Get("/", h.listVerbs)
			r.Post("/import", h.importVerbs)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
