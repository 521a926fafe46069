package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrDuplicateFollow = errors.New("already following this user")
)
