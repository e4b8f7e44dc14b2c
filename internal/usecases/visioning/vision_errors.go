package visioning

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction   = errors.New("invalid quick action")
	ErrSessionNotFound = errors.New("drawer session not found")
)

// VisionError carrega o código de API junto do erro base
type VisionError struct {
	Err       error
	Code      string
	SessionID string
	Details   string
}

func (e *VisionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *VisionError) Unwrap() error {
	return e.Err
}

func NewVisionError(err error, code string, sessionID string, details string) *VisionError {
	return &VisionError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
