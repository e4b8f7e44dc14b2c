package domain

// ContextPack é a projeção determinística de um snapshot carregado em dois blocos de texto.
// É recriado a cada quick action e nunca persistido.
type ContextPack struct {
	ScreenTitle     string    `json:"screen_title"`
	Route           Route     `json:"route"`
	Snapshot        *Snapshot `json:"snapshot"`
	ExportPackText  string    `json:"export_pack_text"`
	ContextPackText string    `json:"context_pack_text"`
}

type QuickActionRequest struct {
	SessionID   string      `json:"session_id"`
	Action      QuickAction `json:"action"`
	Route       Route       `json:"route"`
	ScreenTitle string      `json:"screen_title"`
	SnapshotID  string      `json:"snapshot_id"`
}

type QuickActionResponse struct {
	SessionID  string      `json:"session_id"`
	Action     QuickAction `json:"action"`
	Label      string      `json:"label"`
	AnswerText string      `json:"answer_text"`
}
