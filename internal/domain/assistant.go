package domain

import "strings"

// NotAvailableInSnapshot é a frase exata usada sempre que o dado não existe no snapshot.
const NotAvailableInSnapshot = "Not available in this snapshot."

// LeoUnavailable é a mensagem do chat v1 quando a edge function falha.
const LeoUnavailable = "Leo is unavailable. Try again."

// SnapshotContext é a projeção (somente strings) de um snapshot enviada ao assistente.
type SnapshotContext struct {
	SnapshotID       string                  `json:"snapshot_id"`
	SnapshotMonth    string                  `json:"snapshot_month"`
	SnapshotKind     string                  `json:"snapshot_kind"`
	ProjectKey       string                  `json:"project_key"`
	CreatedAt        string                  `json:"created_at"`
	Label            string                  `json:"label"`
	InvestorPosition SnapshotContextPosition `json:"investor_position"`
	MetricValues     []SnapshotContextMetric `json:"metric_values"`
	SnapshotSources  []SnapshotContextSource `json:"snapshot_sources"`
}

type SnapshotContextPosition struct {
	SummaryText   string `json:"summary_text"`
	NarrativeText string `json:"narrative_text"`
}

type SnapshotContextMetric struct {
	MetricKey  string `json:"metric_key"`
	ValueText  string `json:"value_text"`
	SourcePage string `json:"source_page"`
	CreatedAt  string `json:"created_at"`
}

type SnapshotContextSource struct {
	SourceType string `json:"source_type"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Note       string `json:"note"`
}

// AskRequest é o corpo recebido em /v1/leo/ask e /v1/agents/:id/ask.
type AskRequest struct {
	Question   string `json:"question"`
	SnapshotID string `json:"snapshot_id"`
	Route      Route  `json:"route"`
}

// LeoCitation é uma citação já normalizada (título obrigatório, demais campos com traço).
type LeoCitation struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Date  string `json:"date"`
	URL   string `json:"url"`
}

// LeoSections é a resposta normalizada do Ask Leo v2.
type LeoSections struct {
	Summary       string        `json:"summary"`
	WhatChanged   string        `json:"what_changed"`
	Context       string        `json:"context"`
	Citations     []LeoCitation `json:"citations"`
	Missing       []string      `json:"missing_sections"`
	Deterministic bool          `json:"deterministic"`
	Error         string        `json:"error,omitempty"`
}

// NotAvailableSections é a resposta v2 quando nada utilizável foi obtido.
func NotAvailableSections() LeoSections {
	return LeoSections{
		Summary:   NotAvailableInSnapshot,
		Citations: []LeoCitation{},
	}
}

// MissingSections lista as seções vazias ou com traço, na ordem em que são exibidas.
func (s LeoSections) MissingSections() []string {
	missing := []string{}
	if isBlankOrDash(s.Summary) {
		missing = append(missing, "Summary")
	}
	if isBlankOrDash(s.WhatChanged) {
		missing = append(missing, "What changed")
	}
	if isBlankOrDash(s.Context) {
		missing = append(missing, "Context")
	}
	if len(s.Citations) == 0 {
		missing = append(missing, "Sources")
	}
	return missing
}

func isBlankOrDash(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == "—"
}

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type LeoSourceUsed struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type LeoEvidence struct {
	MetricsUsed []string        `json:"metrics_used"`
	SourcesUsed []LeoSourceUsed `json:"sources_used"`
}

// ChatMessage é uma mensagem do chat v1.
type ChatMessage struct {
	ID       string       `json:"id"`
	Role     ChatRole     `json:"role"`
	Text     string       `json:"text"`
	Evidence *LeoEvidence `json:"evidence,omitempty"`
}

type ChatRequest struct {
	Question   string `json:"question"`
	SnapshotID string `json:"snapshot_id"`
	Route      Route  `json:"route"`
}

type ChatResponse struct {
	Question ChatMessage `json:"question"`
	Answer   ChatMessage `json:"answer"`
}

// LeoAnswer é a resposta normalizada do Ask Leo v1.
type LeoAnswer struct {
	AnswerText string      `json:"answer_text"`
	Evidence   LeoEvidence `json:"evidence"`
}

// EmptyEvidence é a evidência de uma resposta que não usou nada do snapshot.
func EmptyEvidence() LeoEvidence {
	return LeoEvidence{MetricsUsed: []string{}, SourcesUsed: []LeoSourceUsed{}}
}
