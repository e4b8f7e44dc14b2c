package packing

import (
	"fmt"
	"strings"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

type ContextPackInput struct {
	ScreenTitle string
	Route       domain.Route
	Snapshot    *domain.Snapshot
	Position    *domain.InvestorPosition
	Metrics     []domain.MetricValue
	Sources     []domain.SnapshotSource
}

// BuildContextPack projeta o snapshot carregado no export pack e no context pack.
// Mesma entrada, mesmo texto.
func BuildContextPack(in ContextPackInput) domain.ContextPack {
	exportPackText := BuildSnapshotExport(in.Snapshot, domain.SnapshotData{
		Position: in.Position,
		Metrics:  in.Metrics,
		Sources:  in.Sources,
	})

	lines := []string{
		"LEO VISION — Context Pack",
		fmt.Sprintf("Screen: %s (%s)", in.ScreenTitle, in.Route),
		"Snapshot: " + SnapshotDisplayLabel(in.Snapshot),
	}
	lines = append(lines, SnapshotMetaLines(in.Snapshot)...)
	lines = append(lines, "", exportPackText)

	return domain.ContextPack{
		ScreenTitle:     in.ScreenTitle,
		Route:           in.Route,
		Snapshot:        in.Snapshot,
		ExportPackText:  exportPackText,
		ContextPackText: strings.Join(lines, "\n"),
	}
}
