package demo

import (
	"sort"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

// Dados fixos do modo demo. Só strings de exibição, "—" quando desconhecido.
const (
	InvestorID = "11111111-1111-4111-8111-111111111111"
	seedNow    = "2026-02-09T00:00:00.000Z"

	seedPositionSummary   = "Demo seed position summary (display-only)."
	seedPositionNarrative = "Demo seed narrative text (display-only)."
)

func strPtr(s string) *string {
	return &s
}

// Snapshots retorna uma cópia dos snapshots de demonstração.
func Snapshots() []domain.Snapshot {
	return []domain.Snapshot{
		{
			ID:            "00000000-0000-4000-8000-000000000001",
			InvestorID:    InvestorID,
			SnapshotKind:  domain.SnapshotKindMonthly,
			SnapshotMonth: "2026-01-01",
			CreatedAt:     "2026-01-10T12:00:00.000Z",
			Label:         strPtr("Demo seed snapshot (display-only)."),
		},
		{
			ID:            "00000000-0000-4000-8000-000000000002",
			InvestorID:    InvestorID,
			SnapshotKind:  domain.SnapshotKindMonthly,
			SnapshotMonth: "2026-02-01",
			CreatedAt:     "2026-02-10T12:00:00.000Z",
			Label:         strPtr("Demo seed snapshot (display-only)."),
		},
		{
			ID:            "00000000-0000-4000-8000-000000000003",
			InvestorID:    InvestorID,
			SnapshotKind:  domain.SnapshotKindProject,
			SnapshotMonth: "2026-02-01",
			ProjectKey:    strPtr("DEMO-PROJECT"),
			CreatedAt:     "2026-02-12T12:00:00.000Z",
			Label:         strPtr("Demo project snapshot (display-only)."),
		},
	}
}

var seedMetricKeys = map[string][]string{
	"00000000-0000-4000-8000-000000000001": {"value.enterprise_value", "value.post_money", "cap_table.ownership_percent", "company.stage"},
	"00000000-0000-4000-8000-000000000002": {"value.enterprise_value", "value.post_money", "revenue.mrr", "company.stage"},
	"00000000-0000-4000-8000-000000000003": {"project.status", "project.milestone"},
}

// IsSeedSnapshot indica se o id pertence aos dados de demonstração.
func IsSeedSnapshot(snapshotID string) bool {
	_, ok := seedMetricKeys[snapshotID]
	return ok
}

func FindSnapshot(snapshotID string) (*domain.Snapshot, bool) {
	for _, s := range Snapshots() {
		if s.ID == snapshotID {
			snapshot := s
			return &snapshot, true
		}
	}
	return nil, false
}

// MostRecentSnapshot ordena por snapshot_month e depois created_at, do mais novo para o mais antigo.
func MostRecentSnapshot() domain.Snapshot {
	snapshots := Snapshots()
	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].SnapshotMonth != snapshots[j].SnapshotMonth {
			return snapshots[i].SnapshotMonth > snapshots[j].SnapshotMonth
		}
		return snapshots[i].CreatedAt > snapshots[j].CreatedAt
	})
	return snapshots[0]
}

func MetricValues(snapshotID string) []domain.MetricValue {
	keys := seedMetricKeys[snapshotID]
	metrics := make([]domain.MetricValue, 0, len(keys))
	for _, key := range keys {
		metrics = append(metrics, domain.MetricValue{
			SnapshotID: snapshotID,
			MetricKey:  key,
			ValueText:  "—",
			SourcePage: "—",
			CreatedAt:  seedNow,
		})
	}
	return metrics
}

func InvestorPosition(snapshotID string) *domain.InvestorPosition {
	if !IsSeedSnapshot(snapshotID) {
		return nil
	}
	return &domain.InvestorPosition{
		InvestorID:    InvestorID,
		SnapshotID:    snapshotID,
		SummaryText:   strPtr(seedPositionSummary),
		NarrativeText: strPtr(seedPositionNarrative),
		CreatedAt:     seedNow,
		UpdatedAt:     seedNow,
	}
}

func Sources(snapshotID string) []domain.SnapshotSource {
	if !IsSeedSnapshot(snapshotID) {
		return []domain.SnapshotSource{}
	}
	return []domain.SnapshotSource{
		{
			SourceType: strPtr("Notion (demo)"),
			Title:      strPtr("Source document (demo)"),
			URL:        nil,
			Note:       strPtr("—"),
		},
	}
}
