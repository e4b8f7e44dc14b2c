package leo

import (
	"strings"

	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leodomain"
	"github.com/leora-investor/investor-os-api/internal/domain"
)

const dash = "—"

// NormalizeSections aceita {summary,...}, {response:{...}} e {answerText,...}.
// Sem nenhuma seção utilizável, o resumo vira a frase de indisponibilidade.
func NormalizeSections(envelope leodomain.Envelope) domain.LeoSections {
	inner := map[string]any(envelope)
	if response, ok := envelope["response"].(map[string]any); ok {
		inner = response
	}

	summary := firstNonEmpty(inner, "summary", "answerText")
	whatChanged := firstNonEmpty(inner, "what_changed", "whatChanged")
	context := firstNonEmpty(inner, "context", "context_text")
	citations := normalizeCitations(inner["citations"])

	if summary == "" && whatChanged == "" && context == "" && len(citations) == 0 {
		return domain.NotAvailableSections()
	}

	if summary == domain.NotAvailableInSnapshot {
		return domain.NotAvailableSections()
	}

	return domain.LeoSections{
		Summary:     summary,
		WhatChanged: whatChanged,
		Context:     context,
		Citations:   citations,
	}
}

// NormalizeAnswer lê a resposta do v1: answerText com traço como fallback e evidências.
func NormalizeAnswer(envelope leodomain.Envelope) domain.LeoAnswer {
	answer := domain.LeoAnswer{
		AnswerText: dash,
		Evidence:   domain.EmptyEvidence(),
	}
	if text := nonEmptyString(envelope["answerText"]); text != "" {
		answer.AnswerText = text
	}

	evidence, ok := envelope["evidence"].(map[string]any)
	if !ok {
		return answer
	}

	if items, ok := evidence["metrics_used"].([]any); ok {
		for _, item := range items {
			if key := nonEmptyString(item); key != "" {
				answer.Evidence.MetricsUsed = append(answer.Evidence.MetricsUsed, key)
			}
		}
	}

	if items, ok := evidence["sources_used"].([]any); ok {
		for _, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			title := nonEmptyString(rec["title"])
			if title == "" {
				continue
			}
			answer.Evidence.SourcesUsed = append(answer.Evidence.SourcesUsed, domain.LeoSourceUsed{
				Title: title,
				URL:   orDash(nonEmptyString(rec["url"])),
			})
		}
	}

	return answer
}

func normalizeCitations(raw any) []domain.LeoCitation {
	citations := []domain.LeoCitation{}
	items, ok := raw.([]any)
	if !ok {
		return citations
	}

	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := nonEmptyString(rec["title"])
		if title == "" {
			continue
		}
		citations = append(citations, domain.LeoCitation{
			Title: title,
			Type:  orDash(nonEmptyString(rec["type"])),
			Date:  orDash(nonEmptyString(rec["date"])),
			URL:   orDash(nonEmptyString(rec["url"])),
		})
	}
	return citations
}

func firstNonEmpty(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := nonEmptyString(rec[key]); v != "" {
			return v
		}
	}
	return ""
}

// nonEmptyString retorna o texto sem espaços nas pontas, ou "" se não for string.
func nonEmptyString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func orDash(v string) string {
	if v == "" {
		return dash
	}
	return v
}
