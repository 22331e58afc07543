package usecase

import (
	"errors"
	"fmt"
)

// ValidationError is returned when the lead itself is unusable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// Stage names the CRM call that failed.
type Stage string

const (
	StageSearch Stage = "search"
	StageCreate Stage = "create"
	StageUpdate Stage = "update"
)

// RemoteError wraps any failure talking to the contact directory.
type RemoteError struct {
	Stage Stage
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("contact %s failed: %v", e.Stage, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// AsRemoteError reports the failing stage when err came from the directory.
func AsRemoteError(err error) (*RemoteError, bool) {
	var target *RemoteError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
