package handler

import (
	"net/http"

	"github.com/leora-investor/investor-os-api/internal/api/handler/router"
	"github.com/leora-investor/investor-os-api/internal/demo"
	"github.com/leora-investor/investor-os-api/internal/usecases/asking"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/authenticating"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
	"github.com/leora-investor/investor-os-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
			Public:  true,
		},
	}
}

func Account(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Snapshots(service snapshotting.Reader, audit *auditing.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshots(service),
		},
		{
			Path:    "/v1/latest-snapshot",
			Method:  http.MethodGet,
			Handler: LatestSnapshot(service),
		},
		{
			Path:    "/v1/snapshots/:snapshot_id",
			Method:  http.MethodGet,
			Handler: GetSnapshotDetail(service, audit),
		},
		{
			Path:    "/v1/snapshots/:snapshot_id/export",
			Method:  http.MethodGet,
			Handler: ExportSnapshot(service),
		},
		{
			Path:    "/v1/snapshots/:snapshot_id/export/events",
			Method:  http.MethodPost,
			Handler: LogExportEvent(service, audit),
		},
		{
			Path:    "/v1/snapshots/:snapshot_id/context-pack",
			Method:  http.MethodGet,
			Handler: GetContextPack(service),
		},
	}
}

func Vision(service visioning.Visioner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/vision/actions",
			Method:  http.MethodPost,
			Handler: RunQuickAction(service),
		},
		{
			Path:    "/v1/vision/sessions/:session_id",
			Method:  http.MethodDelete,
			Handler: CloseVisionSession(service),
		},
	}
}

func Leo(service asking.Asker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leo/ask",
			Method:  http.MethodPost,
			Handler: AskLeo(service),
		},
		{
			Path:    "/v1/leo/chat",
			Method:  http.MethodPost,
			Handler: ChatLeo(service),
		},
		{
			Path:    "/v1/agents",
			Method:  http.MethodGet,
			Handler: ListAgents(),
		},
		{
			Path:    "/v1/agents/:agent_id/ask",
			Method:  http.MethodPost,
			Handler: AskAgent(service),
		},
	}
}

func Audit(audit *auditing.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audit/events",
			Method:  http.MethodGet,
			Handler: ListAuditEvents(audit),
		},
		{
			Path:    "/v1/audit/events",
			Method:  http.MethodPost,
			Handler: LogAuditEvent(audit),
		},
	}
}

// DemoMode retorna as rotas do modo demo, bloqueadas fora de desenvolvimento
func DemoMode(mode *demo.Mode, audit *auditing.Registry) []router.Route {
	devOnly := middleware.DevOnly(mode.Available())
	return []router.Route{
		{
			Path:        "/v1/demo",
			Method:      http.MethodGet,
			Handler:     GetDemoMode(mode),
			Middlewares: []func(http.Handler) http.Handler{devOnly},
		},
		{
			Path:        "/v1/demo",
			Method:      http.MethodPut,
			Handler:     SetDemoMode(mode, audit),
			Middlewares: []func(http.Handler) http.Handler{devOnly},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	serviceRoleOnly := middleware.RoleMiddleware([]string{middleware.RoleServiceRole})
	return []router.Route{
		{
			Path:        "/v1/cron/:job/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{serviceRoleOnly},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{serviceRoleOnly},
		},
	}
}
