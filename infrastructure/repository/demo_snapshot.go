package repository

import (
	"context"

	"github.com/leora-investor/investor-os-api/internal/demo"
	"github.com/leora-investor/investor-os-api/internal/domain"
)

// demoSnapshotRepository serve os dados fixos do modo demo sem tocar no banco.
type demoSnapshotRepository struct{}

func NewDemoSnapshotRepository() SnapshotRepository {
	return demoSnapshotRepository{}
}

func (demoSnapshotRepository) ListSnapshots(_ context.Context, params domain.ListSnapshotsParams) ([]domain.Snapshot, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSnapshotListLimit
	}

	snapshots := make([]domain.Snapshot, 0)
	for _, s := range demo.Snapshots() {
		if params.SnapshotKind != nil && s.SnapshotKind != *params.SnapshotKind {
			continue
		}
		if params.SnapshotMonth != nil && s.SnapshotMonth != *params.SnapshotMonth {
			continue
		}
		if params.ProjectKey != nil && (s.ProjectKey == nil || *s.ProjectKey != *params.ProjectKey) {
			continue
		}
		snapshots = append(snapshots, s)
		if len(snapshots) == limit {
			break
		}
	}

	return snapshots, nil
}

func (demoSnapshotRepository) ListMetricValues(_ context.Context, snapshotID string) ([]domain.MetricValue, error) {
	return demo.MetricValues(snapshotID), nil
}

func (demoSnapshotRepository) GetInvestorPosition(_ context.Context, snapshotID string) (*domain.InvestorPosition, error) {
	return demo.InvestorPosition(snapshotID), nil
}

func (demoSnapshotRepository) ListSnapshotSources(_ context.Context, snapshotID string) ([]domain.SnapshotSource, error) {
	return demo.Sources(snapshotID), nil
}
