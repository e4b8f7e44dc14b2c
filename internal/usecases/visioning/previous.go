package visioning

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/repository"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
)

const previousLookupLimit = 50

// FindPrevious retorna o snapshot anterior do mesmo tipo e projeto, ou nil.
// Falha na listagem é tratada como "sem anterior".
func FindPrevious(ctx context.Context, repo repository.SnapshotRepository, current *domain.Snapshot) *domain.Snapshot {
	if current == nil || current.ID == "" {
		return nil
	}

	kind := current.SnapshotKind
	snapshots, err := repo.ListSnapshots(ctx, domain.ListSnapshotsParams{
		SnapshotKind: &kind,
		ProjectKey:   current.ProjectKey,
		Limit:        previousLookupLimit,
	})
	if err != nil {
		logrus.WithError(err).
			WithField("snapshot_id", current.ID).
			Warn("visioning: falha ao listar snapshots, seguindo sem snapshot anterior")
		return nil
	}

	sorted := make([]domain.Snapshot, len(snapshots))
	copy(sorted, snapshots)
	snapshotting.SortNewestFirst(sorted)

	for i, s := range sorted {
		if s.ID != current.ID {
			continue
		}
		if i+1 < len(sorted) {
			previous := sorted[i+1]
			return &previous
		}
		return nil
	}

	return nil
}
