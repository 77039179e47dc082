package estimator

import (
	"errors"
	"fmt"
	"net/http"
)

// notLoadedError signals use before the artifacts were loaded.
type notLoadedError struct{}

func (notLoadedError) Error() string   { return "artifacts not loaded" }
func (notLoadedError) StatusCode() int { return http.StatusServiceUnavailable }

// ErrNotLoaded is returned by every operation invoked before Load completed.
var ErrNotLoaded error = notLoadedError{}

// IsNotLoaded reports whether err indicates the precondition violation above.
func IsNotLoaded(err error) bool { return errors.Is(err, ErrNotLoaded) }

// InputError rejects a numeric input before any feature vector is built.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) StatusCode() int { return http.StatusUnprocessableEntity }

// IsInvalidInput reports whether err is an *InputError.
func IsInvalidInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
