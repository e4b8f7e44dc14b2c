package asking

import (
	"context"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/packing"
)

// BuildSnapshotContext projeta o snapshot em texto puro para o assistente. Métricas
// proibidas saem e todo campo vazio vira traço.
func (s *Service) BuildSnapshotContext(ctx context.Context, snapshot *domain.Snapshot) domain.SnapshotContext {
	return SnapshotContextFrom(snapshot, s.snapshots.LoadData(ctx, snapshot))
}

func SnapshotContextFrom(snapshot *domain.Snapshot, data domain.SnapshotData) domain.SnapshotContext {
	out := domain.SnapshotContext{
		SnapshotID:      packing.Dash,
		SnapshotMonth:   packing.Dash,
		SnapshotKind:    packing.Dash,
		ProjectKey:      packing.Dash,
		CreatedAt:       packing.Dash,
		Label:           packing.Dash,
		MetricValues:    []domain.SnapshotContextMetric{},
		SnapshotSources: []domain.SnapshotContextSource{},
	}

	if snapshot != nil {
		out.SnapshotID = packing.NonEmptyOrDash(snapshot.ID)
		out.SnapshotMonth = packing.NonEmptyOrDash(snapshot.SnapshotMonth)
		out.SnapshotKind = packing.NonEmptyOrDash(string(snapshot.SnapshotKind))
		out.ProjectKey = packing.NonEmptyOrDashPtr(snapshot.ProjectKey)
		out.CreatedAt = packing.NonEmptyOrDash(snapshot.CreatedAt)
		out.Label = packing.NonEmptyOrDashPtr(snapshot.Label)
	}

	out.InvestorPosition = domain.SnapshotContextPosition{SummaryText: packing.Dash, NarrativeText: packing.Dash}
	if data.Position != nil {
		out.InvestorPosition.SummaryText = packing.NonEmptyOrDashPtr(data.Position.SummaryText)
		out.InvestorPosition.NarrativeText = packing.NonEmptyOrDashPtr(data.Position.NarrativeText)
	}

	for _, m := range domain.FilterAllowedMetrics(data.Metrics) {
		out.MetricValues = append(out.MetricValues, domain.SnapshotContextMetric{
			MetricKey:  packing.NonEmptyOrDash(m.MetricKey),
			ValueText:  packing.NonEmptyOrDash(m.ValueText),
			SourcePage: packing.NonEmptyOrDash(m.SourcePage),
			CreatedAt:  packing.NonEmptyOrDash(m.CreatedAt),
		})
	}

	for _, src := range data.Sources {
		out.SnapshotSources = append(out.SnapshotSources, domain.SnapshotContextSource{
			SourceType: packing.NonEmptyOrDashPtr(src.SourceType),
			Title:      packing.NonEmptyOrDashPtr(src.Title),
			URL:        packing.NonEmptyOrDashPtr(src.URL),
			Note:       packing.NonEmptyOrDashPtr(src.Note),
		})
	}

	return out
}
