package snapshotting

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/repository"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/packing"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/utils"
)

// ListFilters são os filtros aceitos na listagem de snapshots, como vieram da requisição.
type ListFilters struct {
	Kind       string
	Month      string
	ProjectKey string
	Limit      int
}

type Reader interface {
	List(ctx context.Context, filters ListFilters) ([]domain.Snapshot, error)
	Latest(ctx context.Context) (*domain.Snapshot, error)
	Find(ctx context.Context, snapshotID string) (*domain.Snapshot, error)
	LoadData(ctx context.Context, snapshot *domain.Snapshot) domain.SnapshotData
	Detail(ctx context.Context, snapshotID string) (*domain.SnapshotDetailResponse, error)
	ExportText(ctx context.Context, snapshotID string) (string, *domain.Snapshot, error)
	ContextPack(ctx context.Context, snapshotID string, route domain.Route, screenTitle string) (domain.ContextPack, error)
}

type Service struct {
	repo      repository.SnapshotRepository
	listLimit int
}

func NewService(repo repository.SnapshotRepository, listLimit int) *Service {
	if listLimit <= 0 {
		listLimit = repository.DefaultSnapshotListLimit
	}
	return &Service{
		repo:      repo,
		listLimit: listLimit,
	}
}

func (s *Service) List(ctx context.Context, filters ListFilters) ([]domain.Snapshot, error) {
	params := domain.ListSnapshotsParams{Limit: filters.Limit}
	if params.Limit <= 0 {
		params.Limit = s.listLimit
	}

	if kind := strings.TrimSpace(filters.Kind); kind != "" {
		k := domain.SnapshotKind(kind)
		if !k.Valid() {
			return nil, NewSnapshotError(ErrInvalidKind, apiErrors.ErrInvalidFormat, "", kind)
		}
		params.SnapshotKind = &k
	}

	if month := strings.TrimSpace(filters.Month); month != "" {
		if _, err := utils.ParseDate(month); err != nil {
			return nil, NewSnapshotError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "", month)
		}
		params.SnapshotMonth = &month
	}

	if projectKey := strings.TrimSpace(filters.ProjectKey); projectKey != "" {
		params.ProjectKey = &projectKey
	}

	snapshots, err := s.repo.ListSnapshots(ctx, params)
	if err != nil {
		return nil, NewSnapshotError(ErrListSnapshots, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return snapshots, nil
}

// Latest retorna o snapshot mais recente por snapshot_month e depois created_at, ou nil.
func (s *Service) Latest(ctx context.Context) (*domain.Snapshot, error) {
	snapshots, err := s.List(ctx, ListFilters{})
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}

	SortNewestFirst(snapshots)
	latest := snapshots[0]
	return &latest, nil
}

// Find localiza um snapshot visível para o investidor. Não existe RPC de leitura por id.
func (s *Service) Find(ctx context.Context, snapshotID string) (*domain.Snapshot, error) {
	snapshotID = strings.TrimSpace(snapshotID)
	if snapshotID == "" {
		return nil, NewSnapshotError(ErrSnapshotIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	snapshots, err := s.List(ctx, ListFilters{})
	if err != nil {
		return nil, err
	}

	for _, snapshot := range snapshots {
		if snapshot.ID == snapshotID {
			found := snapshot
			return &found, nil
		}
	}

	return nil, NewSnapshotError(ErrSnapshotNotFound, apiErrors.ErrSnapshotNotFound, snapshotID, "")
}

// LoadData busca posição, métricas e fontes em paralelo. Cada falha vira vazio/nil e é logada;
// uma falha nunca cancela as outras.
func (s *Service) LoadData(ctx context.Context, snapshot *domain.Snapshot) domain.SnapshotData {
	if snapshot == nil || strings.TrimSpace(snapshot.ID) == "" {
		return domain.SnapshotData{Metrics: []domain.MetricValue{}, Sources: []domain.SnapshotSource{}}
	}

	var (
		position    *domain.InvestorPosition
		metrics     []domain.MetricValue
		sources     []domain.SnapshotSource
		positionErr error
		metricsErr  error
		sourcesErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		position, positionErr = s.repo.GetInvestorPosition(ctx, snapshot.ID)
	}()

	go func() {
		defer wg.Done()
		metrics, metricsErr = s.repo.ListMetricValues(ctx, snapshot.ID)
	}()

	go func() {
		defer wg.Done()
		sources, sourcesErr = s.repo.ListSnapshotSources(ctx, snapshot.ID)
	}()

	wg.Wait()

	logger := logrus.WithField("snapshot_id", snapshot.ID)
	if positionErr != nil {
		logger.WithError(positionErr).Warn("snapshotting: falha ao carregar posição, seguindo sem ela")
		position = nil
	}
	if metricsErr != nil || metrics == nil {
		if metricsErr != nil {
			logger.WithError(metricsErr).Warn("snapshotting: falha ao carregar métricas, seguindo sem elas")
		}
		metrics = []domain.MetricValue{}
	}
	if sourcesErr != nil || sources == nil {
		if sourcesErr != nil {
			logger.WithError(sourcesErr).Warn("snapshotting: falha ao carregar fontes, seguindo sem elas")
		}
		sources = []domain.SnapshotSource{}
	}

	return domain.SnapshotData{
		SnapshotID: snapshot.ID,
		Position:   position,
		Metrics:    metrics,
		Sources:    sources,
	}
}

// Detail retorna o snapshot com posição, métricas permitidas e fontes já ordenadas.
func (s *Service) Detail(ctx context.Context, snapshotID string) (*domain.SnapshotDetailResponse, error) {
	snapshot, err := s.Find(ctx, snapshotID)
	if err != nil {
		return nil, err
	}

	data := s.LoadData(ctx, snapshot)

	return &domain.SnapshotDetailResponse{
		Snapshot: snapshot,
		Position: data.Position,
		Metrics:  packing.SortMetrics(data.Metrics),
		Sources:  packing.SortSources(data.Sources),
	}, nil
}

func (s *Service) ExportText(ctx context.Context, snapshotID string) (string, *domain.Snapshot, error) {
	snapshot, err := s.Find(ctx, snapshotID)
	if err != nil {
		return "", nil, err
	}

	return packing.BuildSnapshotExport(snapshot, s.LoadData(ctx, snapshot)), snapshot, nil
}

func (s *Service) ContextPack(ctx context.Context, snapshotID string, route domain.Route, screenTitle string) (domain.ContextPack, error) {
	snapshot, err := s.Find(ctx, snapshotID)
	if err != nil {
		return domain.ContextPack{}, err
	}

	if strings.TrimSpace(screenTitle) == "" {
		screenTitle = route.Title()
	}

	data := s.LoadData(ctx, snapshot)
	return packing.BuildContextPack(packing.ContextPackInput{
		ScreenTitle: screenTitle,
		Route:       route,
		Snapshot:    snapshot,
		Position:    data.Position,
		Metrics:     data.Metrics,
		Sources:     data.Sources,
	}), nil
}

// SortNewestFirst ordena por (snapshot_month, created_at) decrescente, comparando como texto.
func SortNewestFirst(snapshots []domain.Snapshot) {
	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].SnapshotMonth != snapshots[j].SnapshotMonth {
			return snapshots[i].SnapshotMonth > snapshots[j].SnapshotMonth
		}
		return snapshots[i].CreatedAt > snapshots[j].CreatedAt
	})
}
