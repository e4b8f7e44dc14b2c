package leodomain

import (
	"fmt"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

// ActiveSnapshot são os metadados do snapshot ativo enviados junto da pergunta.
type ActiveSnapshot struct {
	SnapshotMonth *string `json:"snapshot_month"`
	SnapshotKind  *string `json:"snapshot_kind"`
	ProjectKey    *string `json:"project_key"`
	CreatedAt     *string `json:"created_at"`
	Label         *string `json:"label"`
}

func NewActiveSnapshot(snapshot *domain.Snapshot) *ActiveSnapshot {
	if snapshot == nil {
		return nil
	}
	kind := string(snapshot.SnapshotKind)
	return &ActiveSnapshot{
		SnapshotMonth: &snapshot.SnapshotMonth,
		SnapshotKind:  &kind,
		ProjectKey:    snapshot.ProjectKey,
		CreatedAt:     &snapshot.CreatedAt,
		Label:         snapshot.Label,
	}
}

// AskPayload é o corpo enviado às edge functions do Leo.
type AskPayload struct {
	Question        string                 `json:"question"`
	SnapshotID      string                 `json:"snapshot_id,omitempty"`
	SnapshotContext domain.SnapshotContext `json:"snapshotContext"`
	ActiveSnapshot  *ActiveSnapshot        `json:"activeSnapshot"`
}

// Envelope é o corpo JSON devolvido pela edge function, sem tipagem.
// Os formatos variam entre versões, por isso a leitura é campo a campo.
type Envelope map[string]any

// FunctionError representa uma resposta não-2xx da edge function
type FunctionError struct {
	Function   string
	StatusCode int
	Body       string
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("edge function %s respondeu com status %d: %s", e.Function, e.StatusCode, e.Body)
}
