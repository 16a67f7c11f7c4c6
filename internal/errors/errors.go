package errors

import (
	"errors"
	"fmt"
)

// Common error types for the shell
var (
	// Storage errors
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidToken     = errors.New("invalid token")

	// Routing errors
	ErrRouteNotFound  = errors.New("route not found")
	ErrDuplicateRoute = errors.New("duplicate route")

	// API errors
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrInvalidResponse = errors.New("invalid response")

	// Preview server errors
	ErrHostNotAllowed = errors.New("host not allowed")

	// General errors
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnsupported    = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
