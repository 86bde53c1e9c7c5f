package adapter

import "errors"

var (
	// ErrRepositoryUnavailable wraps every tree listing failure.
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	// ErrContentUnavailable wraps every file content failure.
	ErrContentUnavailable = errors.New("file content unavailable")

	ErrUnauthorized        = errors.New("upstream rejected credentials")
	ErrForbidden           = errors.New("upstream access forbidden")
	ErrRepositoryNotFound  = errors.New("repository or branch not found")
	ErrRateLimited         = errors.New("upstream rate limit exceeded")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("upstream internal server error")

	// ErrJudgeHandleNotFound is returned when the judge does not know a handle.
	ErrJudgeHandleNotFound = errors.New("judge handle does not exist")
	// ErrUnsupportedEncoding is returned for blobs in an unknown encoding.
	ErrUnsupportedEncoding = errors.New("unsupported blob encoding")
)
