package packing

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

const scenarioExport = `LEORA — Investor Pack
2026-02-01 · monthly · —

My Position
- summary_text: —
- narrative_text: ok

Value
- value.post_money: $10M

Documents & Sources
- —`

func scenarioInput() ContextPackInput {
	return ContextPackInput{
		ScreenTitle: "Export",
		Route:       domain.RouteExportPack,
		Snapshot: &domain.Snapshot{
			ID:            "00000000-0000-4000-8000-000000000002",
			SnapshotKind:  domain.SnapshotKindMonthly,
			SnapshotMonth: "2026-02-01",
			CreatedAt:     "2026-02-10T12:00:00.000Z",
		},
		Position: &domain.InvestorPosition{
			SummaryText:   stringPtr(""),
			NarrativeText: stringPtr("ok"),
		},
		Metrics: []domain.MetricValue{
			{MetricKey: "value.post_money", ValueText: "$10M"},
		},
	}
}

func TestNonEmptyOrDash(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{name: "nil vira traço", value: nil, want: Dash},
		{name: "vazio vira traço", value: stringPtr(""), want: Dash},
		{name: "só espaços vira traço", value: stringPtr(" \t\n "), want: Dash},
		{name: "valor é mantido sem trim", value: stringPtr("  ok "), want: "  ok "},
		{name: "texto null literal é mantido", value: stringPtr("null"), want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NonEmptyOrDashPtr(tt.value))
		})
	}
}

func TestBuildInvestorPackText_Cenario(t *testing.T) {
	text := BuildInvestorPackText(PackInput{
		Month:         "2026-02-01",
		Kind:          "monthly",
		ProjectKey:    Dash,
		SummaryText:   "",
		NarrativeText: "ok",
		Metrics: []domain.MetricValue{
			{MetricKey: "value.post_money", ValueText: "$10M"},
		},
	})

	assert.Equal(t, scenarioExport, text)
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestBuildInvestorPackText_Fontes(t *testing.T) {
	text := BuildInvestorPackText(PackInput{
		Month:         "2026-01-01",
		Kind:          "project",
		ProjectKey:    "DEMO-PROJECT",
		SummaryText:   "s",
		NarrativeText: "n",
		Metrics: []domain.MetricValue{
			{MetricKey: "project.status", ValueText: "   "},
		},
		Sources: []domain.SnapshotSource{
			{SourceType: stringPtr("Notion"), Title: stringPtr("Board deck"), URL: stringPtr("https://x.test/a"), Note: stringPtr("  page 3 ")},
			{SourceType: nil, Title: stringPtr(" "), URL: nil, Note: stringPtr("   ")},
		},
	})

	want := strings.Join([]string{
		"LEORA — Investor Pack",
		"2026-01-01 · project · DEMO-PROJECT",
		"",
		"My Position",
		"- summary_text: s",
		"- narrative_text: n",
		"",
		"Value",
		"- project.status: —",
		"",
		"Documents & Sources",
		"- [Notion] Board deck — https://x.test/a",
		"  - note:   page 3 ",
		"- [—] — — —",
	}, "\n")

	assert.Equal(t, want, text)
}

func TestBuildInvestorPackText_CamposEmBrancoNuncaFicamVazios(t *testing.T) {
	for _, blank := range []string{"", " ", "\t"} {
		text := BuildInvestorPackText(PackInput{
			Month:         blank,
			Kind:          blank,
			ProjectKey:    blank,
			SummaryText:   blank,
			NarrativeText: blank,
		})

		assert.Contains(t, text, "— · — · —")
		assert.Contains(t, text, "- summary_text: —")
		assert.Contains(t, text, "- narrative_text: —")
		assert.NotContains(t, text, "null")
	}
}

func TestBuildContextPack(t *testing.T) {
	pack := BuildContextPack(scenarioInput())

	assert.Equal(t, scenarioExport, pack.ExportPackText)

	want := strings.Join([]string{
		"LEO VISION — Context Pack",
		"Screen: Export (export_pack)",
		"Snapshot: 2026-02-01 · monthly · —",
		"- snapshot_id: 00000000-0000-4000-8000-000000000002",
		"- snapshot_id_short: 000002",
		"- snapshot_month: 2026-02-01",
		"- snapshot_kind: monthly",
		"- project_key: —",
		"- created_at: 2026-02-10T12:00:00.000Z",
		"- label: —",
		"",
		scenarioExport,
	}, "\n")
	assert.Equal(t, want, pack.ContextPackText)
	assert.Equal(t, "Export", pack.ScreenTitle)
	assert.Equal(t, domain.RouteExportPack, pack.Route)
}

func TestBuildContextPack_Idempotente(t *testing.T) {
	first := BuildContextPack(scenarioInput())
	second := BuildContextPack(scenarioInput())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("context pack mudou entre chamadas (-first +second):\n%s", diff)
	}
}

func TestBuildContextPack_SemSnapshot(t *testing.T) {
	pack := BuildContextPack(ContextPackInput{ScreenTitle: "Cockpit", Route: domain.RouteCockpit})

	assert.Contains(t, pack.ContextPackText, "Snapshot: — · — · —")
	for _, line := range EmptyMetaLines() {
		assert.Contains(t, pack.ContextPackText, line)
	}
	assert.Contains(t, pack.ExportPackText, "- summary_text: —")
}

func TestSnapshotMetaLines_IDCurto(t *testing.T) {
	lines := SnapshotMetaLines(&domain.Snapshot{ID: "abc"})
	assert.Equal(t, "- snapshot_id_short: abc", lines[1])

	lines = SnapshotMetaLines(&domain.Snapshot{ID: "  "})
	assert.Equal(t, "- snapshot_id: —", lines[0])
	assert.Equal(t, "- snapshot_id_short: —", lines[1])
	require.Len(t, lines, 7)
}

func TestBuildContextPack_MetricasProibidasNaoAparecem(t *testing.T) {
	in := scenarioInput()
	in.Metrics = append(in.Metrics,
		domain.MetricValue{MetricKey: "ops.error_rate", ValueText: "2%"},
		domain.MetricValue{MetricKey: "ops.Design-Speed", ValueText: "fast"},
	)

	pack := BuildContextPack(in)

	assert.NotContains(t, pack.ContextPackText, "error_rate")
	assert.NotContains(t, pack.ContextPackText, "Design-Speed")
	assert.Contains(t, pack.ContextPackText, "- value.post_money: $10M")
}
