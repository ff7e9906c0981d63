package http

import (
	"net/http"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/service"
	"github.com/mikas-m/wortschatz/internal/utils"
)

type Handler struct {
	services *service.Services

	version string
	logger  *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}

// userIDFromRequest reads the authenticated user's ID placed in the request
// context by the auth middleware. A missing ID means the handler was reached
// without passing through the middleware; the request is rejected with 401.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
