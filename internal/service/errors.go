package service

import "errors"

// Terminal sync failures. The HTTP layer maps each of them to a status code.
var (
	ErrNoCredentials           = errors.New("no repository linked")
	ErrCredentialDecryptFailed = errors.New("stored credential cannot be decrypted, link the repository again")
	ErrTreeFetchFailed         = errors.New("repository tree fetch failed")
	ErrSyncInProgress          = errors.New("sync already in progress")
	ErrSyncLockLost            = errors.New("sync lock lost to another run")
)

// Input validation failures.
var (
	ErrInvalidRepository = errors.New("invalid repository")
	ErrEmptyToken        = errors.New("access token is empty")
	ErrEmptyHandle       = errors.New("judge handle is empty")
	ErrInvalidUserID     = errors.New("invalid user id")
)

var (
	ErrJudgeHandleNotFound   = errors.New("judge handle not found")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
