package http

import (
	"errors"
	"net/http"

	"github.com/periodicapp/periodic/internal/service"
	"github.com/periodicapp/periodic/internal/session"
	"github.com/periodicapp/periodic/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	session.ErrNoSession: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusUnprocessableEntity,
	store.ErrElementAlreadyExists:  http.StatusUnprocessableEntity,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrElementNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
