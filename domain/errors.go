package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss will throw if the requested item is not in the cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidCredentials is returned for any username/password mismatch.
	// Wrong username and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoToken is returned when a protected route is hit without a token
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken is returned for a token with a bad signature or past expiry
	ErrInvalidToken = errors.New("failed to authenticate token")
)
