package http

import (
	"errors"
	"net/http"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/service"
	"github.com/mikas-m/wortschatz/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidationEmptyField:    http.StatusBadRequest,
	service.ErrValidationValueTooLong:  http.StatusBadRequest,
	service.ErrUnknownWordKind:         http.StatusBadRequest,
	service.ErrUnknownQuizDirection:    http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrRecordNotFound:        http.StatusNotFound,
	store.ErrInvalidField:          http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,

	ErrInvalidRecordID: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError logs err and writes it out with the status resolved from
// errorStatusMap. Unknown errors become 500 with the generic status text so
// that internal details never leak to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Send()

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}
	http.Error(w, message, status)
}
