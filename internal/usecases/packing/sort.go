package packing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

// compareText compara por collation em inglês e desempata pela ordem de bytes,
// assim a ordenação não depende da ordem de entrada.
func compareText(c *collate.Collator, a, b string) int {
	if r := c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// newCollator cria um collator por chamada; collate.Collator não é seguro entre goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// SortMetrics remove as chaves proibidas e ordena por metric_key. Retorna um novo slice.
func SortMetrics(metrics []domain.MetricValue) []domain.MetricValue {
	sorted := domain.FilterAllowedMetrics(metrics)
	c := newCollator()

	sort.SliceStable(sorted, func(i, j int) bool {
		if r := compareText(c, sorted[i].MetricKey, sorted[j].MetricKey); r != 0 {
			return r < 0
		}
		// mesma chave: valor e página tornam a saída independente da ordem de entrada
		if r := strings.Compare(sorted[i].ValueText, sorted[j].ValueText); r != 0 {
			return r < 0
		}
		return strings.Compare(sorted[i].SourcePage, sorted[j].SourcePage) < 0
	})

	return sorted
}

// SortSources ordena por (tipo, título) sem caixa e depois por url.
func SortSources(sources []domain.SnapshotSource) []domain.SnapshotSource {
	sorted := make([]domain.SnapshotSource, len(sources))
	copy(sorted, sources)
	c := newCollator()

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if r := compareText(c, lowerOrEmpty(a.SourceType), lowerOrEmpty(b.SourceType)); r != 0 {
			return r < 0
		}
		if r := compareText(c, lowerOrEmpty(a.Title), lowerOrEmpty(b.Title)); r != 0 {
			return r < 0
		}
		if r := compareText(c, valueOrEmpty(a.URL), valueOrEmpty(b.URL)); r != 0 {
			return r < 0
		}
		// desempate final pelo texto original, incluindo a nota
		if r := strings.Compare(valueOrEmpty(a.SourceType), valueOrEmpty(b.SourceType)); r != 0 {
			return r < 0
		}
		if r := strings.Compare(valueOrEmpty(a.Title), valueOrEmpty(b.Title)); r != 0 {
			return r < 0
		}
		return strings.Compare(valueOrEmpty(a.Note), valueOrEmpty(b.Note)) < 0
	})

	return sorted
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func lowerOrEmpty(value *string) string {
	return strings.ToLower(valueOrEmpty(value))
}
