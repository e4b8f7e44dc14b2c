package packing

import (
	"fmt"
	"strings"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

// PackInput são os campos do Investor Pack. Métricas e fontes são usadas na ordem recebida.
type PackInput struct {
	Month         string
	Kind          string
	ProjectKey    string
	SummaryText   string
	NarrativeText string
	Metrics       []domain.MetricValue
	Sources       []domain.SnapshotSource
}

// BuildInvestorPackText gera o texto do Investor Pack. O formato é copiado e compartilhado
// como está, então qualquer mudança aqui muda o que o investidor recebe.
func BuildInvestorPackText(in PackInput) string {
	lines := make([]string, 0, 12+len(in.Metrics)+2*len(in.Sources))

	lines = append(lines,
		"LEORA — Investor Pack",
		fmt.Sprintf("%s · %s · %s", NonEmptyOrDash(in.Month), NonEmptyOrDash(in.Kind), NonEmptyOrDash(in.ProjectKey)),
		"",
		"My Position",
		"- summary_text: "+NonEmptyOrDash(in.SummaryText),
		"- narrative_text: "+NonEmptyOrDash(in.NarrativeText),
		"",
		"Value",
	)

	if len(in.Metrics) == 0 {
		lines = append(lines, "- "+Dash)
	}
	for _, m := range in.Metrics {
		lines = append(lines, fmt.Sprintf("- %s: %s", m.MetricKey, NonEmptyOrDash(m.ValueText)))
	}

	lines = append(lines, "", "Documents & Sources")

	if len(in.Sources) == 0 {
		lines = append(lines, "- "+Dash)
	}
	for _, s := range in.Sources {
		lines = append(lines, fmt.Sprintf("- [%s] %s — %s",
			NonEmptyOrDashPtr(s.SourceType),
			NonEmptyOrDashPtr(s.Title),
			NonEmptyOrDashPtr(s.URL),
		))
		if s.Note != nil && strings.TrimSpace(*s.Note) != "" {
			lines = append(lines, "  - note: "+*s.Note)
		}
	}

	return strings.Join(lines, "\n")
}

// BuildSnapshotExport monta o Investor Pack de um snapshot carregado, aplicando filtro e ordenação.
func BuildSnapshotExport(snapshot *domain.Snapshot, data domain.SnapshotData) string {
	month, kind, projectKey := snapshotHeader(snapshot)
	summary, narrative := positionText(data.Position)

	return BuildInvestorPackText(PackInput{
		Month:         month,
		Kind:          kind,
		ProjectKey:    projectKey,
		SummaryText:   summary,
		NarrativeText: narrative,
		Metrics:       SortMetrics(data.Metrics),
		Sources:       SortSources(data.Sources),
	})
}
