package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

func TestIsForbiddenMetricKey(t *testing.T) {
	forbidden := []string{
		"ops.error_rate",
		"ops.ERROR",
		"quality.rework_hours",
		"flow.design_to_production_days",
		"flow.Design-To-Production",
		"flow.design_speed",
		"flow.DESIGN-SPEED",
	}
	for _, key := range forbidden {
		assert.True(t, domain.IsForbiddenMetricKey(key), key)
	}

	allowed := []string{"value.enterprise_value", "revenue.mrr", "company.stage", "design.team", ""}
	for _, key := range allowed {
		assert.False(t, domain.IsForbiddenMetricKey(key), key)
	}
}

func TestSortMetrics(t *testing.T) {
	metrics := []domain.MetricValue{
		{MetricKey: "value.post_money"},
		{MetricKey: "ops.rework"},
		{MetricKey: "company.stage"},
		{MetricKey: "cap_table.ownership_percent"},
		{MetricKey: "revenue.mrr"},
	}

	sorted := SortMetrics(metrics)

	keys := make([]string, 0, len(sorted))
	for _, m := range sorted {
		keys = append(keys, m.MetricKey)
	}
	assert.Equal(t, []string{"cap_table.ownership_percent", "company.stage", "revenue.mrr", "value.post_money"}, keys)
	// entrada intacta
	assert.Equal(t, "value.post_money", metrics[0].MetricKey)
}

func TestSortMetrics_IndependeDaOrdem(t *testing.T) {
	a := []domain.MetricValue{
		{MetricKey: "b", ValueText: "2"},
		{MetricKey: "a", ValueText: "1"},
		{MetricKey: "b", ValueText: "1"},
		{MetricKey: "B", ValueText: "1"},
	}
	b := []domain.MetricValue{a[3], a[2], a[1], a[0]}
	c := []domain.MetricValue{a[1], a[3], a[0], a[2]}

	assert.Equal(t, SortMetrics(a), SortMetrics(b))
	assert.Equal(t, SortMetrics(a), SortMetrics(c))
}

func TestSortSources(t *testing.T) {
	sources := []domain.SnapshotSource{
		{SourceType: stringPtr("pdf"), Title: stringPtr("Zeta"), URL: stringPtr("https://b")},
		{SourceType: stringPtr("Notion"), Title: stringPtr("beta"), URL: stringPtr("https://a")},
		{SourceType: stringPtr("notion"), Title: stringPtr("Alpha"), URL: stringPtr("https://c")},
		{SourceType: nil, Title: stringPtr("no type"), URL: nil},
		{SourceType: stringPtr("pdf"), Title: stringPtr("zeta"), URL: stringPtr("https://a")},
	}

	sorted := SortSources(sources)

	titles := make([]string, 0, len(sorted))
	for _, s := range sorted {
		titles = append(titles, valueOrEmpty(s.Title)+"|"+valueOrEmpty(s.URL))
	}
	assert.Equal(t, []string{
		"no type|",
		"Alpha|https://c",
		"beta|https://a",
		"zeta|https://a",
		"Zeta|https://b",
	}, titles)
}

func TestSortSources_IndependeDaOrdem(t *testing.T) {
	a := []domain.SnapshotSource{
		{SourceType: stringPtr("pdf"), Title: stringPtr("Deck"), URL: stringPtr("https://a")},
		{SourceType: stringPtr("PDF"), Title: stringPtr("deck"), URL: stringPtr("https://a")},
		{SourceType: stringPtr("pdf"), Title: stringPtr("Deck"), URL: stringPtr("https://A")},
		{SourceType: stringPtr("pdf"), Title: stringPtr("Deck"), URL: stringPtr("https://a"), Note: stringPtr("x")},
	}
	b := []domain.SnapshotSource{a[2], a[0], a[3], a[1]}

	assert.Equal(t, SortSources(a), SortSources(b))
}
