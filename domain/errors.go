package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller is not allowed to perform the action
	ErrForbidden = errors.New("forbidden")
	// ErrCacheMiss will throw if the key is not present in cache
	ErrCacheMiss = errors.New("cache miss")
	// ErrRebuildInProgress will throw if another process holds the similarity rebuild lock
	ErrRebuildInProgress = errors.New("similarity rebuild already in progress")
	// ErrTooManyUsers will throw if the user set exceeds the configured rebuild cap
	ErrTooManyUsers = errors.New("too many users for similarity rebuild")
)
