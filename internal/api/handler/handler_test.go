package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leora-investor/investor-os-api/infrastructure/repository"
	"github.com/leora-investor/investor-os-api/internal/api/handler/router"
	"github.com/leora-investor/investor-os-api/internal/config"
	"github.com/leora-investor/investor-os-api/internal/demo"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/asking"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/authenticating"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/middleware"
)

const (
	snapshotJan     = "00000000-0000-4000-8000-000000000001"
	snapshotFeb     = "00000000-0000-4000-8000-000000000002"
	snapshotProject = "00000000-0000-4000-8000-000000000003"
)

const testJWTSecret = "handler-test-secret"

type recordingSink struct {
	actors []string
}

func (s *recordingSink) TrackActor(actor string, _ time.Time) {
	s.actors = append(s.actors, actor)
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

type fixture struct {
	router router.Router
	audit  *auditing.Registry
	mode   *demo.Mode
	sink   *recordingSink
	cron   *fakeCronJob
}

// newFixture monta a API sobre os dados de demonstração, sem rede nem banco, com a
// validação de token real.
func newFixture(t *testing.T, demoAvailable bool) *fixture {
	t.Helper()

	mode := demo.NewMode(demoAvailable, demoAvailable)
	repo := repository.NewDemoSnapshotRepository()
	audit := auditing.NewRegistry()
	snapshots := snapshotting.NewService(repo, 50)
	vision := visioning.NewService(repo, snapshots, audit)
	asker := asking.NewService(repo, snapshots, nil, mode, audit)
	auth := authenticating.NewService(&config.Config{
		App:      config.App{Env: "development"},
		Supabase: config.Supabase{JWTSecret: testJWTSecret},
	}, mode)

	f := &fixture{
		audit: audit,
		mode:  mode,
		sink:  &recordingSink{},
		cron:  &fakeCronJob{},
	}

	f.router = router.New(
		router.WithAuth(middleware.AuthMiddleware(auth, f.sink, mode)),
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Account(auth)...),
		router.WithRoutes(Snapshots(snapshots, audit)...),
		router.WithRoutes(Vision(vision)...),
		router.WithRoutes(Leo(asker)...),
		router.WithRoutes(Audit(audit)...),
		router.WithRoutes(DemoMode(mode, audit)...),
		router.WithRoutes(CronJobs(CronJobServices{SessionSweepService: f.cron})...),
	)
	return f
}

// tokenFor assina um access token no formato do Supabase.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
		Email: userID + "@leora.test",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (f *fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) doAuthenticated(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	return f.do(t, method, path, body, tokenFor(t, "user-1", "authenticated"))
}

// events devolve o log do ator da fixture: demo quando o modo demo está ligado.
func (f *fixture) events() []domain.AuditEvent {
	if f.mode.Enabled() {
		return f.audit.For(domain.DemoActorID).Events()
	}
	return f.audit.For("user-1").Events()
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthcheck(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(t, http.MethodGet, "/healthcheck", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestRotasExigemAutenticacao(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(t, http.MethodGet, "/v1/snapshots", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decode[apiErrors.APIError](t, rec).Code)
}

func TestListSnapshots(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCount  int
		wantCode   string
	}{
		{name: "Sem filtros - todos os snapshots", path: "/v1/snapshots", wantStatus: http.StatusOK, wantCount: 3},
		{name: "Filtro por kind", path: "/v1/snapshots?kind=project", wantStatus: http.StatusOK, wantCount: 1},
		{name: "Limite aplicado", path: "/v1/snapshots?limit=2", wantStatus: http.StatusOK, wantCount: 2},
		{name: "Kind inválido", path: "/v1/snapshots?kind=weekly", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
		{name: "Limite não numérico", path: "/v1/snapshots?limit=abc", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)

			rec := f.doAuthenticated(t, http.MethodGet, tt.path, "")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[apiErrors.APIError](t, rec).Code)
				return
			}
			assert.Len(t, decode[[]domain.Snapshot](t, rec), tt.wantCount)
		})
	}
}

func TestLatestSnapshot(t *testing.T) {
	f := newFixture(t, true)

	rec := f.doAuthenticated(t, http.MethodGet, "/v1/latest-snapshot", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Snapshot *domain.Snapshot `json:"snapshot"`
	}](t, rec)
	require.NotNil(t, body.Snapshot)
	assert.Equal(t, snapshotProject, body.Snapshot.ID)
}

func TestGetSnapshotDetail(t *testing.T) {
	t.Run("Snapshot existente - registra VIEW_SNAPSHOT", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.doAuthenticated(t, http.MethodGet, "/v1/snapshots/"+snapshotFeb, "")

		require.Equal(t, http.StatusOK, rec.Code)
		detail := decode[domain.SnapshotDetailResponse](t, rec)
		require.NotNil(t, detail.Snapshot)
		assert.Equal(t, snapshotFeb, detail.Snapshot.ID)
		assert.NotEmpty(t, detail.Metrics)

		events := f.events()
		require.Len(t, events, 1)
		assert.Equal(t, domain.AuditEventViewSnapshot, events[0].EventType)
		require.NotNil(t, events[0].SnapshotID)
		assert.Equal(t, snapshotFeb, *events[0].SnapshotID)
	})

	t.Run("Snapshot inexistente - 404 sem auditoria", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.doAuthenticated(t, http.MethodGet, "/v1/snapshots/unknown", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSnapshotNotFound, decode[apiErrors.APIError](t, rec).Code)
		assert.Empty(t, f.events())
	})
}

func TestExportSnapshot(t *testing.T) {
	f := newFixture(t, true)

	rec := f.doAuthenticated(t, http.MethodGet, "/v1/snapshots/"+snapshotJan+"/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.String())
}

func TestLogExportEvent(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantMessage  string
		wantEvent    string
		wantNoEvents bool
	}{
		{
			name:        "Cópia com sucesso",
			body:        `{"outcome":"copy","success":true}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Copied.",
			wantEvent:   domain.AuditEventExportCopy,
		},
		{
			name:        "Compartilhamento com sucesso",
			body:        `{"outcome":"share","success":true}`,
			wantStatus:  http.StatusOK,
			wantMessage: "",
			wantEvent:   domain.AuditEventExportShare,
		},
		{
			name:         "Falha no cliente - traço e nenhum evento",
			body:         `{"outcome":"copy","success":false}`,
			wantStatus:   http.StatusOK,
			wantMessage:  "—",
			wantNoEvents: true,
		},
		{
			name:         "Outcome inválido",
			body:         `{"outcome":"print","success":true}`,
			wantStatus:   http.StatusBadRequest,
			wantNoEvents: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)

			rec := f.doAuthenticated(t, http.MethodPost, "/v1/snapshots/"+snapshotJan+"/export/events", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantNoEvents {
				assert.Empty(t, f.events())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decode[domain.ExportEventResponse](t, rec)
			assert.Equal(t, tt.wantMessage, resp.Status)
			if tt.wantEvent != "" {
				require.NotNil(t, resp.Event)
				assert.Equal(t, tt.wantEvent, resp.Event.EventType)
				assert.Len(t, f.events(), 1)
			}
		})
	}
}

func TestGetContextPack(t *testing.T) {
	f := newFixture(t, true)

	rec := f.doAuthenticated(t, http.MethodGet, "/v1/snapshots/"+snapshotFeb+"/context-pack?route=value_multi", "")

	require.Equal(t, http.StatusOK, rec.Code)
	pack := decode[domain.ContextPack](t, rec)
	assert.Equal(t, "Value", pack.ScreenTitle)
	assert.Equal(t, domain.RouteValueMulti, pack.Route)
	assert.NotEmpty(t, pack.ContextPackText)
	assert.NotEmpty(t, pack.ExportPackText)
}

func TestVisionQuickActions(t *testing.T) {
	t.Run("Quick action válida abre sessão e fecha em seguida", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.doAuthenticated(t, http.MethodPost, "/v1/vision/actions",
			`{"action":"explain_screen","route":"orbit","snapshot_id":"`+snapshotFeb+`"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[domain.QuickActionResponse](t, rec)
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, "Explain this screen", resp.Label)
		assert.Contains(t, resp.AnswerText, "Ask Leo — Explain this screen")

		events := f.events()
		require.Len(t, events, 1)
		assert.Equal(t, domain.AuditEventLeoQuickAction, events[0].EventType)

		rec = f.doAuthenticated(t, http.MethodDelete, "/v1/vision/sessions/"+resp.SessionID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = f.doAuthenticated(t, http.MethodDelete, "/v1/vision/sessions/"+resp.SessionID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSessionNotFound, decode[apiErrors.APIError](t, rec).Code)
	})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "Sem action", body: `{"route":"orbit"}`, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "Action desconhecida", body: `{"action":"predict_returns"}`, wantCode: apiErrors.ErrInvalidFormat},
		{name: "JSON inválido", body: `{"action":`, wantCode: apiErrors.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)

			rec := f.doAuthenticated(t, http.MethodPost, "/v1/vision/actions", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decode[apiErrors.APIError](t, rec).Code)
		})
	}
}

func TestLeoEndpointsEmModoDemo(t *testing.T) {
	t.Run("Ask responde de forma determinística", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.doAuthenticated(t, http.MethodPost, "/v1/leo/ask",
			`{"question":"Create a brief","snapshot_id":"`+snapshotFeb+`","route":"orbit"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		sections := decode[domain.LeoSections](t, rec)
		assert.True(t, sections.Deterministic)
		assert.Contains(t, sections.Summary, "Ask Leo — Investor Brief (template)")
	})

	t.Run("Chat devolve pergunta e resposta", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.doAuthenticated(t, http.MethodPost, "/v1/leo/chat",
			`{"question":"What should I check next?","snapshot_id":"`+snapshotFeb+`"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[domain.ChatResponse](t, rec)
		assert.Equal(t, "What should I check next?", resp.Question.Text)
		assert.NotEmpty(t, resp.Answer.Text)
		assert.NotEqual(t, resp.Question.ID, resp.Answer.ID)
	})

	t.Run("Chat sem snapshot", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.doAuthenticated(t, http.MethodPost, "/v1/leo/chat", `{"question":"Anything?"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.NotAvailableInSnapshot, decode[domain.ChatResponse](t, rec).Answer.Text)
	})
}

func TestAgents(t *testing.T) {
	f := newFixture(t, true)

	rec := f.doAuthenticated(t, http.MethodGet, "/v1/agents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Agent](t, rec), 4)

	rec = f.doAuthenticated(t, http.MethodPost, "/v1/agents/quant/ask", `{"question":"Hi","snapshot_id":"`+snapshotFeb+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.NotAvailableInSnapshot, decode[domain.LeoSections](t, rec).Summary)

	rec = f.doAuthenticated(t, http.MethodPost, "/v1/agents/oracle/ask", `{"question":"Hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrAgentNotFound, decode[apiErrors.APIError](t, rec).Code)
}

func TestAuditEvents(t *testing.T) {
	f := newFixture(t, true)

	rec := f.doAuthenticated(t, http.MethodPost, "/v1/audit/events", `{"note":"Orbit","occurred_at":"2026-01-01T00:00:00.000Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	event := decode[domain.AuditEvent](t, rec)
	assert.Equal(t, domain.AuditEventViewScreen, event.EventType)

	rec = f.doAuthenticated(t, http.MethodPost, "/v1/audit/events", `{"event_type":"VIEW_SCREEN","note":"Value","occurred_at":"2026-03-01T00:00:00.000Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.doAuthenticated(t, http.MethodGet, "/v1/audit/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode[[]domain.AuditEvent](t, rec)
	require.Len(t, events, 2)
	assert.Equal(t, "2026-03-01T00:00:00.000Z", events[0].OccurredAt)
	assert.Equal(t, "2026-01-01T00:00:00.000Z", events[1].OccurredAt)
}

func TestAuditEvents_LogsSeparadosPorInvestidor(t *testing.T) {
	f := newFixture(t, false)
	tokenA := tokenFor(t, "investor-a", "authenticated")
	tokenB := tokenFor(t, "investor-b", "authenticated")

	rec := f.do(t, http.MethodGet, "/v1/snapshots/"+snapshotFeb, "", tokenA)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = f.do(t, http.MethodPost, "/v1/audit/events", `{"note":"Orbit"}`, tokenA)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/v1/audit/events", `{"note":"private note of B"}`, tokenB)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = f.do(t, http.MethodGet, "/v1/me", "", tokenB)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/audit/events", "", tokenA)
	require.Equal(t, http.StatusOK, rec.Code)
	eventsA := decode[[]domain.AuditEvent](t, rec)
	require.Len(t, eventsA, 2)
	for _, event := range eventsA {
		if event.Note != nil {
			assert.NotContains(t, *event.Note, "private note of B")
		}
	}
	assert.NotContains(t, rec.Body.String(), "private note of B")

	rec = f.do(t, http.MethodGet, "/v1/audit/events", "", tokenB)
	require.Equal(t, http.StatusOK, rec.Code)
	eventsB := decode[[]domain.AuditEvent](t, rec)
	require.Len(t, eventsB, 1)
	assert.Equal(t, "private note of B", *eventsB[0].Note)

	assert.Equal(t, []string{"investor-a", "investor-b"}, f.audit.Actors())
}

func TestVision_SessaoDeOutroInvestidor(t *testing.T) {
	f := newFixture(t, false)
	tokenA := tokenFor(t, "investor-a", "authenticated")
	tokenB := tokenFor(t, "investor-b", "authenticated")

	rec := f.do(t, http.MethodPost, "/v1/vision/actions",
		`{"action":"create_investor_brief","snapshot_id":"`+snapshotFeb+`"}`, tokenA)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sessionA := decode[domain.QuickActionResponse](t, rec).SessionID

	rec = f.do(t, http.MethodPost, "/v1/vision/actions",
		`{"session_id":"`+sessionA+`","action":"create_investor_brief","snapshot_id":"`+snapshotFeb+`"}`, tokenB)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEqual(t, sessionA, decode[domain.QuickActionResponse](t, rec).SessionID)

	rec = f.do(t, http.MethodDelete, "/v1/vision/sessions/"+sessionA, "", tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodDelete, "/v1/vision/sessions/"+sessionA, "", tokenA)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDemoMode(t *testing.T) {
	t.Run("Desligar o modo demo encerra os logs do usuário e do demo", func(t *testing.T) {
		f := newFixture(t, true)
		f.audit.For("user-1").Log(auditing.LogInput{EventType: domain.AuditEventViewScreen})
		f.audit.For(domain.DemoActorID).Log(auditing.LogInput{EventType: domain.AuditEventViewScreen})

		rec := f.doAuthenticated(t, http.MethodPut, "/v1/demo", `{"enabled":false}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[DemoModeResponse](t, rec).Enabled)
		assert.Empty(t, f.audit.Actors())
		assert.Equal(t, []string{domain.DemoActorID}, f.sink.actors)
	})

	t.Run("Sem corpo alterna o estado", func(t *testing.T) {
		f := newFixture(t, true)
		f.mode.Set(false)
		f.audit.For("user-1").Log(auditing.LogInput{EventType: domain.AuditEventViewScreen})

		rec := f.doAuthenticated(t, http.MethodPut, "/v1/demo", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[DemoModeResponse](t, rec).Enabled)
		assert.Empty(t, f.audit.Actors())
		assert.Equal(t, []string{"user-1"}, f.sink.actors)
	})

	t.Run("Mesmo estado - logs mantidos", func(t *testing.T) {
		f := newFixture(t, true)
		f.audit.For(domain.DemoActorID).Log(auditing.LogInput{EventType: domain.AuditEventViewScreen})

		rec := f.doAuthenticated(t, http.MethodPut, "/v1/demo", `{"enabled":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{domain.DemoActorID}, f.audit.Actors())
	})

	t.Run("Fora de desenvolvimento - bloqueado", func(t *testing.T) {
		f := newFixture(t, false)

		rec := f.doAuthenticated(t, http.MethodGet, "/v1/demo", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrDemoUnavailable, decode[apiErrors.APIError](t, rec).Code)
	})
}

func TestGetMe(t *testing.T) {
	f := newFixture(t, true)

	rec := f.doAuthenticated(t, http.MethodGet, "/v1/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[domain.Me](t, rec)
	assert.Equal(t, "user-1", me.UserID)
	assert.Equal(t, "development", me.Environment)
	assert.True(t, me.DemoMode)
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		path          string
		wantStatus    int
		wantTriggered int
	}{
		{name: "Service role dispara a limpeza", role: "service_role", path: "/v1/cron/session-sweep/run", wantStatus: http.StatusOK, wantTriggered: 1},
		{name: "Tipo all", role: "service_role", path: "/v1/cron/all/run", wantStatus: http.StatusOK, wantTriggered: 1},
		{name: "Tipo inválido", role: "service_role", path: "/v1/cron/meta/run", wantStatus: http.StatusBadRequest},
		{name: "Usuário comum não pode", role: "authenticated", path: "/v1/cron/session-sweep/run", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)

			rec := f.do(t, http.MethodPost, tt.path, "", tokenFor(t, "user-1", tt.role))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, f.cron.triggered)
		})
	}

	t.Run("Status", func(t *testing.T) {
		f := newFixture(t, true)

		rec := f.do(t, http.MethodGet, "/v1/cron/status", "", tokenFor(t, "user-1", "service_role"))

		require.Equal(t, http.StatusOK, rec.Code)
		status := decode[map[string]map[string]any](t, rec)
		assert.Equal(t, true, status[CronJobTypeSessionSweep]["sync_enabled"])
	})
}
