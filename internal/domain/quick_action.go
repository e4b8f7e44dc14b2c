package domain

// QuickAction é uma das perguntas fixas que o drawer do Leo Vision oferece.
type QuickAction string

const (
	QuickActionExplainScreen        QuickAction = "explain_screen"
	QuickActionWhatChanged          QuickAction = "what_changed_since_last_snapshot"
	QuickActionWhatShouldICheckNext QuickAction = "what_should_i_check_next"
	QuickActionCreateInvestorBrief  QuickAction = "create_investor_brief"
)

var AllQuickActions = []QuickAction{
	QuickActionExplainScreen,
	QuickActionWhatChanged,
	QuickActionWhatShouldICheckNext,
	QuickActionCreateInvestorBrief,
}

func (a QuickAction) Valid() bool {
	switch a {
	case QuickActionExplainScreen, QuickActionWhatChanged, QuickActionWhatShouldICheckNext, QuickActionCreateInvestorBrief:
		return true
	}
	return false
}

// Label é o texto do botão no drawer.
func (a QuickAction) Label() string {
	switch a {
	case QuickActionExplainScreen:
		return "Explain this screen"
	case QuickActionWhatChanged:
		return "What changed since last snapshot?"
	case QuickActionWhatShouldICheckNext:
		return "What should I check next?"
	default:
		return "Create Investor Brief (from Export Pack)"
	}
}

// PrefillQuestion é a pergunta sugerida na tela do Ask Leo v2 para cada ação.
func (a QuickAction) PrefillQuestion(screenTitle string) string {
	switch a {
	case QuickActionExplainScreen:
		return `Explain the "` + screenTitle + `" screen for this snapshot using only snapshot-scoped fields.`
	case QuickActionWhatChanged:
		return "What changed since the previous snapshot? Use only snapshot-scoped fields. If missing, say Not available in this snapshot."
	case QuickActionWhatShouldICheckNext:
		return "What should I check next in this snapshot? Only point to fields present or missing. No calculations, predictions, or advice."
	default:
		return "Create an investor brief for this snapshot using only snapshot-scoped fields. Quote values verbatim and avoid calculations. If missing, say Not available in this snapshot."
	}
}
