package domain

import "strings"

// Substrings de métricas operacionais que nunca aparecem em listas, exports ou context packs.
var forbiddenMetricKeyParts = []string{
	"error",
	"rework",
	"design_to_production",
	"design-to-production",
	"design_speed",
	"design-speed",
}

// IsForbiddenMetricKey indica se a métrica é um KPI operacional excluído por política de produto.
func IsForbiddenMetricKey(metricKey string) bool {
	k := strings.ToLower(metricKey)
	for _, part := range forbiddenMetricKeyParts {
		if strings.Contains(k, part) {
			return true
		}
	}
	return false
}

// FilterAllowedMetrics remove as métricas proibidas, preservando a ordem.
func FilterAllowedMetrics(metrics []MetricValue) []MetricValue {
	allowed := make([]MetricValue, 0, len(metrics))
	for _, m := range metrics {
		if IsForbiddenMetricKey(m.MetricKey) {
			continue
		}
		allowed = append(allowed, m)
	}
	return allowed
}
