package leo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo"
	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leodomain"
	"github.com/leora-investor/investor-os-api/internal/domain"
)

func TestNormalizeSections(t *testing.T) {
	tests := []struct {
		name     string
		envelope leodomain.Envelope
		want     domain.LeoSections
	}{
		{
			name: "formato direto",
			envelope: leodomain.Envelope{
				"summary":      "  Stored summary. ",
				"what_changed": "Nothing stored.",
				"context":      "Monthly snapshot.",
				"citations": []any{
					map[string]any{"title": "Board deck", "url": "https://x"},
					map[string]any{"title": "  ", "url": "https://y"},
					"lixo",
				},
			},
			want: domain.LeoSections{
				Summary:     "Stored summary.",
				WhatChanged: "Nothing stored.",
				Context:     "Monthly snapshot.",
				Citations:   []domain.LeoCitation{{Title: "Board deck", Type: "—", Date: "—", URL: "https://x"}},
			},
		},
		{
			name: "envelope response com aliases",
			envelope: leodomain.Envelope{
				"response": map[string]any{
					"answerText":   "From answer.",
					"whatChanged":  "Alias.",
					"context_text": "Context alias.",
				},
			},
			want: domain.LeoSections{
				Summary:     "From answer.",
				WhatChanged: "Alias.",
				Context:     "Context alias.",
				Citations:   []domain.LeoCitation{},
			},
		},
		{
			name:     "nada utilizável",
			envelope: leodomain.Envelope{"summary": 42, "citations": "x"},
			want:     domain.NotAvailableSections(),
		},
		{
			name: "frase de indisponibilidade limpa o resto",
			envelope: leodomain.Envelope{
				"summary":   "Not available in this snapshot.",
				"context":   "ignored",
				"citations": []any{map[string]any{"title": "ignored"}},
			},
			want: domain.NotAvailableSections(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leo.NormalizeSections(tt.envelope))
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	t.Run("com evidências", func(t *testing.T) {
		answer := leo.NormalizeAnswer(leodomain.Envelope{
			"answerText": " The summary is stored. ",
			"evidence": map[string]any{
				"metrics_used": []any{"value.post_money", " ", 3},
				"sources_used": []any{
					map[string]any{"title": "Deck"},
					map[string]any{"url": "https://no-title"},
				},
			},
		})

		assert.Equal(t, "The summary is stored.", answer.AnswerText)
		assert.Equal(t, []string{"value.post_money"}, answer.Evidence.MetricsUsed)
		assert.Equal(t, []domain.LeoSourceUsed{{Title: "Deck", URL: "—"}}, answer.Evidence.SourcesUsed)
	})

	t.Run("vazio", func(t *testing.T) {
		answer := leo.NormalizeAnswer(leodomain.Envelope{})

		assert.Equal(t, "—", answer.AnswerText)
		assert.Empty(t, answer.Evidence.MetricsUsed)
		assert.NotNil(t, answer.Evidence.SourcesUsed)
	})
}
