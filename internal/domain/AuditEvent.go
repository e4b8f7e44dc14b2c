package domain

const (
	AuditEventViewSnapshot   = "VIEW_SNAPSHOT"
	AuditEventViewScreen     = "VIEW_SCREEN"
	AuditEventExportCopy     = "EXPORT_COPY"
	AuditEventExportShare    = "EXPORT_SHARE"
	AuditEventLeoQuickAction = "LEO_QUICK_ACTION"
	AuditEventAskLeo         = "ASK_LEO"
)

// AuditEvent é um registro local (somente em memória) de uma ação do investidor.
type AuditEvent struct {
	ID            string  `json:"id"`
	EventType     string  `json:"event_type"`
	SnapshotID    *string `json:"snapshot_id"`
	SnapshotLabel *string `json:"snapshot_label"`
	OccurredAt    string  `json:"occurred_at"`
	Note          *string `json:"note"`
}

type LogScreenViewRequest struct {
	EventType     string  `json:"event_type"`
	OccurredAt    *string `json:"occurred_at"`
	SnapshotID    *string `json:"snapshot_id"`
	SnapshotLabel *string `json:"snapshot_label"`
	Note          *string `json:"note"`
}

type ExportOutcome string

const (
	ExportOutcomeCopy  ExportOutcome = "copy"
	ExportOutcomeShare ExportOutcome = "share"
)

type ExportEventRequest struct {
	Outcome ExportOutcome `json:"outcome"`
	Success bool          `json:"success"`
}

type ExportEventResponse struct {
	Status string      `json:"status"`
	Event  *AuditEvent `json:"event"`
}
