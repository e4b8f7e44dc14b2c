package domain

type AgentID string

const (
	AgentVision     AgentID = "vision"
	AgentQuant      AgentID = "quant"
	AgentStrategist AgentID = "strategist"
	AgentAuditor    AgentID = "auditor"
)

type Agent struct {
	ID          AgentID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Enabled     bool    `json:"enabled"`
}

// Agents é o registro fixo de agentes. Somente o Vision está habilitado.
var Agents = []Agent{
	{ID: AgentVision, Name: "Leo Vision", Description: "Snapshot-scoped, read-only answers.", Enabled: true},
	{ID: AgentQuant, Name: "Leo Quant", Description: "Locked.", Enabled: false},
	{ID: AgentStrategist, Name: "Leo Strategist", Description: "Locked.", Enabled: false},
	{ID: AgentAuditor, Name: "Leo Auditor", Description: "Locked.", Enabled: false},
}

// FindAgent retorna o agente pelo id.
func FindAgent(id AgentID) (Agent, bool) {
	for _, agent := range Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return Agent{}, false
}
