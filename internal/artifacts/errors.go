package artifacts

import "errors"

// StartupError reports a missing, unreadable or malformed artifact.
// The process must not serve traffic after receiving one.
type StartupError struct {
	Artifact string // "columns" or "model"
	Path     string
	Err      error
}

func (e *StartupError) Error() string {
	if e.Path == "" {
		return "load " + e.Artifact + ": " + e.Err.Error()
	}
	return "load " + e.Artifact + " " + e.Path + ": " + e.Err.Error()
}

func (e *StartupError) Unwrap() error { return e.Err }

// IsStartupFailure reports whether err was raised while loading artifacts.
func IsStartupFailure(err error) bool {
	var se *StartupError
	return errors.As(err, &se)
}
