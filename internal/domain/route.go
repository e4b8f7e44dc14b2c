package domain

// Route identifica a tela do shell mobile que originou a requisição.
type Route string

const (
	RouteOrbit            Route = "orbit"
	RouteValueMulti       Route = "value_multi"
	RouteSnapshotDetail   Route = "snapshot_detail"
	RouteAgents           Route = "agents"
	RouteAskAgent         Route = "ask_agent"
	RouteAudit            Route = "audit"
	RouteAccount          Route = "account"
	RouteExportPack       Route = "export_pack"
	RouteSnapshotTimeline Route = "snapshot_timeline"
	RouteDocumentsSources Route = "documents_sources"
	RouteCockpit          Route = "cockpit"
)

var AllRoutes = []Route{
	RouteOrbit,
	RouteValueMulti,
	RouteSnapshotDetail,
	RouteAgents,
	RouteAskAgent,
	RouteAudit,
	RouteAccount,
	RouteExportPack,
	RouteSnapshotTimeline,
	RouteDocumentsSources,
	RouteCockpit,
}

func (r Route) Valid() bool {
	for _, route := range AllRoutes {
		if r == route {
			return true
		}
	}
	return false
}

// Title retorna o título de exibição da rota. Cockpit é o fallback.
func (r Route) Title() string {
	switch r {
	case RouteOrbit:
		return "Orbit"
	case RouteValueMulti:
		return "Value"
	case RouteSnapshotDetail:
		return "Snapshot Detail"
	case RouteAgents:
		return "Agents"
	case RouteAskAgent:
		return "Ask Agent"
	case RouteAudit:
		return "Audit Log"
	case RouteAccount:
		return "Account"
	case RouteExportPack:
		return "Export"
	case RouteSnapshotTimeline:
		return "Snapshot Timeline"
	case RouteDocumentsSources:
		return "Documents & Sources"
	default:
		return "Cockpit"
	}
}

// ParseRoute converte o valor recebido; valores desconhecidos caem em cockpit.
func ParseRoute(value string) Route {
	r := Route(value)
	if r.Valid() {
		return r
	}
	return RouteCockpit
}
