package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the action is not allowed for the current user
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrInvalidRange will throw if an analytics date range is malformed
	ErrInvalidRange = errors.New("date range is not valid")
	// ErrCacheMiss will throw if the requested item is not cached
	ErrCacheMiss = errors.New("requested item is not cached")
)
