package snapshotting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/leora-investor/investor-os-api/infrastructure/repository/mocks"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

func stringPtr(s string) *string {
	return &s
}

var (
	snapJan = domain.Snapshot{ID: "snap-jan", SnapshotKind: domain.SnapshotKindMonthly, SnapshotMonth: "2026-01-01", CreatedAt: "2026-01-10T12:00:00.000Z"}
	snapFeb = domain.Snapshot{ID: "snap-feb", SnapshotKind: domain.SnapshotKindMonthly, SnapshotMonth: "2026-02-01", CreatedAt: "2026-02-10T12:00:00.000Z"}
	snapPrj = domain.Snapshot{ID: "snap-prj", SnapshotKind: domain.SnapshotKindProject, SnapshotMonth: "2026-02-01", CreatedAt: "2026-02-12T12:00:00.000Z", ProjectKey: stringPtr("P")}
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(repo, 50)
	ctx := context.Background()

	t.Run("converte filtros em parâmetros da RPC", func(t *testing.T) {
		kind := domain.SnapshotKindProject
		month := "2026-02-01"
		project := "P"

		repo.EXPECT().
			ListSnapshots(ctx, domain.ListSnapshotsParams{SnapshotKind: &kind, SnapshotMonth: &month, ProjectKey: &project, Limit: 10}).
			Return([]domain.Snapshot{snapPrj}, nil)

		snapshots, err := service.List(ctx, ListFilters{Kind: "project", Month: "2026-02-01", ProjectKey: " P ", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, []domain.Snapshot{snapPrj}, snapshots)
	})

	t.Run("tipo inválido", func(t *testing.T) {
		_, err := service.List(ctx, ListFilters{Kind: "weekly"})

		var snapErr *SnapshotError
		require.ErrorAs(t, err, &snapErr)
		assert.ErrorIs(t, err, ErrInvalidKind)
		assert.Equal(t, apiErrors.ErrInvalidFormat, snapErr.Code)
	})

	t.Run("mês inválido", func(t *testing.T) {
		_, err := service.List(ctx, ListFilters{Month: "02-2026"})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("falha da RPC", func(t *testing.T) {
		repo.EXPECT().
			ListSnapshots(ctx, domain.ListSnapshotsParams{Limit: 50}).
			Return(nil, errors.New("timeout"))

		_, err := service.List(ctx, ListFilters{})
		assert.ErrorIs(t, err, ErrListSnapshots)
	})
}

func TestService_LatestEFind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(repo, 50)
	ctx := context.Background()

	repo.EXPECT().
		ListSnapshots(ctx, gomock.Any()).
		Return([]domain.Snapshot{snapJan, snapPrj, snapFeb}, nil).
		Times(3)

	latest, err := service.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snap-prj", latest.ID)

	found, err := service.Find(ctx, " snap-feb ")
	require.NoError(t, err)
	assert.Equal(t, "snap-feb", found.ID)

	_, err = service.Find(ctx, "nope")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	_, err = service.Find(ctx, "  ")
	assert.ErrorIs(t, err, ErrSnapshotIDRequired)
}

func TestService_LoadData_FalhasIsoladas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(repo, 50)
	ctx := context.Background()

	repo.EXPECT().GetInvestorPosition(ctx, "snap-feb").Return(nil, errors.New("rpc down"))
	repo.EXPECT().ListMetricValues(ctx, "snap-feb").Return([]domain.MetricValue{{MetricKey: "value.post_money", ValueText: "$10M"}}, nil)
	repo.EXPECT().ListSnapshotSources(ctx, "snap-feb").Return(nil, errors.New("rpc down"))

	data := service.LoadData(ctx, &snapFeb)

	assert.Equal(t, "snap-feb", data.SnapshotID)
	assert.Nil(t, data.Position)
	assert.Len(t, data.Metrics, 1)
	assert.NotNil(t, data.Sources)
	assert.Empty(t, data.Sources)
}

func TestService_LoadData_SemSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSnapshotRepository(ctrl), 50)

	data := service.LoadData(context.Background(), nil)
	assert.Empty(t, data.Metrics)
	assert.Nil(t, data.Position)
}

func TestService_ExportText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(repo, 50)
	ctx := context.Background()

	repo.EXPECT().ListSnapshots(ctx, gomock.Any()).Return([]domain.Snapshot{snapFeb}, nil)
	repo.EXPECT().GetInvestorPosition(ctx, "snap-feb").Return(&domain.InvestorPosition{SummaryText: stringPtr(""), NarrativeText: stringPtr("ok")}, nil)
	repo.EXPECT().ListMetricValues(ctx, "snap-feb").Return([]domain.MetricValue{
		{MetricKey: "value.post_money", ValueText: "$10M"},
		{MetricKey: "ops.rework_rate", ValueText: "9%"},
	}, nil)
	repo.EXPECT().ListSnapshotSources(ctx, "snap-feb").Return([]domain.SnapshotSource{}, nil)

	text, snapshot, err := service.ExportText(ctx, "snap-feb")
	require.NoError(t, err)
	assert.Equal(t, "snap-feb", snapshot.ID)
	assert.Equal(t, `LEORA — Investor Pack
2026-02-01 · monthly · —

My Position
- summary_text: —
- narrative_text: ok

Value
- value.post_money: $10M

Documents & Sources
- —`, text)
}

func TestService_ContextPack_TituloPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(repo, 50)
	ctx := context.Background()

	repo.EXPECT().ListSnapshots(ctx, gomock.Any()).Return([]domain.Snapshot{snapJan}, nil)
	repo.EXPECT().GetInvestorPosition(ctx, "snap-jan").Return(nil, nil)
	repo.EXPECT().ListMetricValues(ctx, "snap-jan").Return(nil, nil)
	repo.EXPECT().ListSnapshotSources(ctx, "snap-jan").Return(nil, nil)

	pack, err := service.ContextPack(ctx, "snap-jan", domain.RouteValueMulti, "")
	require.NoError(t, err)
	assert.Equal(t, "Value", pack.ScreenTitle)
	assert.Contains(t, pack.ContextPackText, "Screen: Value (value_multi)")
}
