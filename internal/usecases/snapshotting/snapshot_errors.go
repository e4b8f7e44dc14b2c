package snapshotting

import (
	"errors"
	"fmt"
)

var (
	ErrSnapshotIDRequired = errors.New("snapshot ID is required")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrInvalidKind        = errors.New("invalid snapshot kind")
	ErrInvalidMonth       = errors.New("invalid snapshot month")
	ErrListSnapshots      = errors.New("error listing snapshots")
)

// SnapshotError é um erro com contexto adicional para snapshots
type SnapshotError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	SnapshotID string // Snapshot envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SnapshotError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

func NewSnapshotError(err error, code string, snapshotID string, details string) *SnapshotError {
	return &SnapshotError{
		Err:        err,
		Code:       code,
		SnapshotID: snapshotID,
		Details:    details,
	}
}
