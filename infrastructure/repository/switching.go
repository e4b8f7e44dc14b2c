package repository

import (
	"context"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

// DemoFlag é o que o repositório precisa saber do modo demo.
type DemoFlag interface {
	Enabled() bool
}

// switchingSnapshotRepository escolhe, a cada chamada, entre o banco e os dados de demonstração.
type switchingSnapshotRepository struct {
	live SnapshotRepository
	demo SnapshotRepository
	flag DemoFlag
}

func NewSwitchingSnapshotRepository(live, demo SnapshotRepository, flag DemoFlag) SnapshotRepository {
	return &switchingSnapshotRepository{
		live: live,
		demo: demo,
		flag: flag,
	}
}

func (r *switchingSnapshotRepository) current() SnapshotRepository {
	if r.flag != nil && r.flag.Enabled() {
		return r.demo
	}
	return r.live
}

func (r *switchingSnapshotRepository) ListSnapshots(ctx context.Context, params domain.ListSnapshotsParams) ([]domain.Snapshot, error) {
	return r.current().ListSnapshots(ctx, params)
}

func (r *switchingSnapshotRepository) ListMetricValues(ctx context.Context, snapshotID string) ([]domain.MetricValue, error) {
	return r.current().ListMetricValues(ctx, snapshotID)
}

func (r *switchingSnapshotRepository) GetInvestorPosition(ctx context.Context, snapshotID string) (*domain.InvestorPosition, error) {
	return r.current().GetInvestorPosition(ctx, snapshotID)
}

func (r *switchingSnapshotRepository) ListSnapshotSources(ctx context.Context, snapshotID string) ([]domain.SnapshotSource, error) {
	return r.current().ListSnapshotSources(ctx, snapshotID)
}
