package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/algo-sync/internal/adapter"
	"github.com/MKhiriev/algo-sync/internal/service"
)

// errorStatusMap is checked in order; the first entry matching with
// errors.Is wins, so more specific errors come first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidUserID, http.StatusBadRequest},
	{service.ErrInvalidRepository, http.StatusBadRequest},
	{service.ErrEmptyToken, http.StatusBadRequest},
	{service.ErrEmptyHandle, http.StatusBadRequest},

	{service.ErrNoCredentials, http.StatusPreconditionFailed},
	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrSyncLockLost, http.StatusConflict},
	{service.ErrCredentialDecryptFailed, http.StatusPreconditionFailed},
	{service.ErrTreeFetchFailed, http.StatusBadGateway},
	{service.ErrJudgeHandleNotFound, http.StatusNotFound},

	{adapter.ErrRateLimited, http.StatusTooManyRequests},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrBadRequest, http.StatusBadGateway},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage hides internal failures behind their status text. A decrypt
// failure is reported without its cause, which describes the server key.
func publicMessage(err error, status int) string {
	if errors.Is(err, service.ErrCredentialDecryptFailed) {
		return service.ErrCredentialDecryptFailed.Error()
	}
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusGatewayTimeout {
		return http.StatusText(status)
	}
	return err.Error()
}
