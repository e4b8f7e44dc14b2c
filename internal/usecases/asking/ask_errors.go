package asking

import (
	"errors"
	"fmt"
)

var ErrAgentNotFound = errors.New("agent not found")

// AskError é um erro com contexto adicional para perguntas ao Leo
type AskError struct {
	Err     error
	Code    string
	AgentID string
	Details string
}

func (e *AskError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AskError) Unwrap() error {
	return e.Err
}

func NewAskError(err error, code string, agentID string, details string) *AskError {
	return &AskError{
		Err:     err,
		Code:    code,
		AgentID: agentID,
		Details: details,
	}
}
