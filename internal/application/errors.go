package application

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user with given email already exists")
	ErrListingNotFound    = errors.New("listing not found")
	ErrForbidden          = errors.New("caller does not own this listing")
	ErrMissingQuery       = errors.New("query parameter is required")
	ErrMissingOwner       = errors.New("user email is required")
	ErrNoResults          = errors.New("no listings found")
)

// ValidationError reports per-field input problems. It is always returned
// before any store access.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
