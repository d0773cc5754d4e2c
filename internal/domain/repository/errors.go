package repository

import "errors"

// ErrNotFound is returned by any repository lookup that matches no record.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when the unique email index rejects an insert.
var ErrDuplicateEmail = errors.New("email already registered")
