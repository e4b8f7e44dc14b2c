package domain

type SnapshotKind string

const (
	SnapshotKindMonthly SnapshotKind = "monthly"
	SnapshotKindProject SnapshotKind = "project"
)

func (k SnapshotKind) Valid() bool {
	return k == SnapshotKindMonthly || k == SnapshotKindProject
}

// Snapshot é uma visão pontual (mês ou projeto) dos dados do investidor.
// Nunca é alterado depois de lido das RPCs.
type Snapshot struct {
	ID            string       `json:"id"`
	InvestorID    string       `json:"investor_id"`
	SnapshotKind  SnapshotKind `json:"snapshot_kind"`
	SnapshotMonth string       `json:"snapshot_month"`
	ProjectKey    *string      `json:"project_key"`
	CreatedAt     string       `json:"created_at"`
	Label         *string      `json:"label"`
}

type MetricValue struct {
	SnapshotID string `json:"snapshot_id"`
	MetricKey  string `json:"metric_key"`
	ValueText  string `json:"value_text"`
	SourcePage string `json:"source_page"`
	CreatedAt  string `json:"created_at"`
}

type InvestorPosition struct {
	InvestorID    string  `json:"investor_id"`
	SnapshotID    string  `json:"snapshot_id"`
	SummaryText   *string `json:"summary_text"`
	NarrativeText *string `json:"narrative_text"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// SnapshotSource não tem identificador próprio; deduplicação fica com quem chama.
type SnapshotSource struct {
	SourceType *string `json:"source_type"`
	Title      *string `json:"title"`
	URL        *string `json:"url"`
	Note       *string `json:"note"`
}

// ListSnapshotsParams espelha os parâmetros de rpc_list_snapshots.
type ListSnapshotsParams struct {
	SnapshotKind  *SnapshotKind
	SnapshotMonth *string
	ProjectKey    *string
	Limit         int
}

// SnapshotData agrupa o que é carregado para um snapshot: posição, métricas e fontes.
type SnapshotData struct {
	SnapshotID string            `json:"snapshot_id"`
	Position   *InvestorPosition `json:"position"`
	Metrics    []MetricValue     `json:"metrics"`
	Sources    []SnapshotSource  `json:"sources"`
}

// SnapshotDetailResponse é a resposta do detalhe de um snapshot.
type SnapshotDetailResponse struct {
	Snapshot *Snapshot         `json:"snapshot"`
	Position *InvestorPosition `json:"position"`
	Metrics  []MetricValue     `json:"metrics"`
	Sources  []SnapshotSource  `json:"sources"`
}
