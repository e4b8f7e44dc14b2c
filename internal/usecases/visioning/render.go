package visioning

import (
	"strings"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/packing"
)

type RenderInput struct {
	Action   domain.QuickAction
	Current  domain.ContextPack
	Previous *domain.ContextPack
}

const modeLine = "Mode: deterministic template (no external calls; no calculations)."

// RenderAnswer monta a resposta determinística de uma quick action. Só formata os packs
// recebidos; não chama nada e não calcula nada.
func RenderAnswer(in RenderInput) string {
	lines := []string{actionHeader(in.Action), "", modeLine, ""}
	current := in.Current

	switch in.Action {
	case domain.QuickActionExplainScreen:
		lines = append(lines,
			"Screen: "+current.ScreenTitle,
			"Snapshot: "+packing.SnapshotDisplayLabel(current.Snapshot),
			"",
			"What this screen does:",
		)
		lines = append(lines, explainScreenBullets(current.Route)...)
		lines = append(lines, "", "Context pack:", current.ContextPackText)

	case domain.QuickActionWhatShouldICheckNext:
		lines = append(lines,
			"Screen: "+current.ScreenTitle,
			"Snapshot: "+packing.SnapshotDisplayLabel(current.Snapshot),
			"",
			"Next checks (read-only):",
			"- Review summary_text and narrative_text (verbatim).",
			"- Review metric values (metric_key + value_text).",
			"- Open Documents & Sources for supporting links.",
			"- Create / copy an Investor Pack (Export).",
			"- Use Audit Log for a chronological record of actions.",
			"",
			"Context pack:",
			current.ContextPackText,
		)

	case domain.QuickActionCreateInvestorBrief:
		lines = append(lines,
			"Investor brief source: Export Pack builder (verbatim; display-only).",
			"",
			current.ExportPackText,
		)

	case domain.QuickActionWhatChanged:
		lines = append(lines,
			"Guardrail note: no deltas, comparisons, or derived metrics are computed here.",
			"This view shows stored text for the current snapshot and the previous snapshot.",
			"",
			"Current snapshot",
		)
		lines = append(lines, packing.SnapshotMetaLines(current.Snapshot)...)
		lines = append(lines, "", "Current context pack:", current.ContextPackText, "", "Previous snapshot")

		if in.Previous != nil {
			lines = append(lines, packing.SnapshotMetaLines(in.Previous.Snapshot)...)
			lines = append(lines, "", "Previous context pack:", in.Previous.ContextPackText)
		} else {
			lines = append(lines, packing.EmptyMetaLines()...)
			lines = append(lines, "", "Previous context pack:", packing.Dash)
		}
	}

	return strings.Join(lines, "\n")
}

func actionHeader(action domain.QuickAction) string {
	switch action {
	case domain.QuickActionExplainScreen:
		return "Ask Leo — Explain this screen"
	case domain.QuickActionWhatChanged:
		return "Ask Leo — What changed since last snapshot?"
	case domain.QuickActionWhatShouldICheckNext:
		return "Ask Leo — What should I check next?"
	default:
		return "Ask Leo — Investor Brief (template)"
	}
}

// explainScreenBullets descreve a tela sem nenhuma inferência. Cockpit é o fallback.
func explainScreenBullets(route domain.Route) []string {
	switch route {
	case domain.RouteOrbit:
		return []string{
			"- Orbit is the entry point to select a snapshot and enter the read-only investor view.",
			"- Use the snapshot selector to pick the active snapshot.",
		}
	case domain.RouteValueMulti:
		return []string{
			"- Value is a display-only view of stored metric values (metric_key + value_text).",
			"- No calculations or derived metrics are performed in-app.",
		}
	case domain.RouteSnapshotDetail:
		return []string{
			"- Snapshot Detail shows the selected snapshot’s stored narrative and metric values.",
			"- Text is displayed verbatim; missing fields show “—”.",
		}
	case domain.RouteDocumentsSources:
		return []string{
			"- Documents & Sources lists snapshot-linked source documents (titles/urls/notes).",
			"- Links open externally; there are no uploads or edits.",
		}
	case domain.RouteExportPack:
		return []string{
			"- Export generates a deterministic plain-text Investor Pack for the active snapshot.",
			"- It supports Copy and Share without adding any calculations.",
		}
	case domain.RouteAudit:
		return []string{
			"- Audit Log shows local, read-only activity records (no analytics, no backend writes).",
			"- It’s chronological truth only (what/when/on which snapshot).",
		}
	case domain.RouteAccount:
		return []string{
			"- Account shows your identity/build info and provides Sign out.",
			"- The app is read-only (other than auth sign-out).",
		}
	case domain.RouteSnapshotTimeline:
		return []string{
			"- Snapshot Timeline lists snapshots chronologically and lets you jump into details.",
			"- Timeline items are metadata only (no trends, charts, or deltas).",
		}
	case domain.RouteAgents, domain.RouteAskAgent, domain.RouteCockpit:
		fallthrough
	default:
		return []string{
			"- Cockpit is the read-only landing view for the active snapshot.",
			"- Use navigation to open Detail, Value, Sources, Export, and Audit Log.",
		}
	}
}

// InferAction escolhe a quick action a partir de palavras-chave da pergunta (modo demo).
func InferAction(question string) domain.QuickAction {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "change") || strings.Contains(q, "since last"):
		return domain.QuickActionWhatChanged
	case strings.Contains(q, "brief") || strings.Contains(q, "pack"):
		return domain.QuickActionCreateInvestorBrief
	case strings.Contains(q, "check") && strings.Contains(q, "next"):
		return domain.QuickActionWhatShouldICheckNext
	case strings.Contains(q, "explain"):
		return domain.QuickActionExplainScreen
	default:
		return domain.QuickActionWhatShouldICheckNext
	}
}
