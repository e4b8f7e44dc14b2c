package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/database/postgres"
	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo"
	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leoclient"
	"github.com/leora-investor/investor-os-api/infrastructure/repository"
	"github.com/leora-investor/investor-os-api/internal/api"
	"github.com/leora-investor/investor-os-api/internal/config"
	"github.com/leora-investor/investor-os-api/internal/demo"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/scheduler"
	"github.com/leora-investor/investor-os-api/internal/usecases/asking"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/authenticating"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	demoMode := demo.NewMode(cfg.App.IsDevelopment(), cfg.Demo.Enabled)

	// O repositório troca entre banco e dados de demonstração a cada chamada
	snapshotRepo := repository.NewSwitchingSnapshotRepository(
		repository.NewSnapshotRepository(pgConn),
		repository.NewDemoSnapshotRepository(),
		demoMode,
	)

	// Um log por ator; o listener só acompanha o volume em debug
	audit := auditing.NewRegistry(auditing.WithListener(func(events []domain.AuditEvent) {
		entry := logrus.WithField("events", len(events))
		if len(events) > 0 {
			entry = entry.WithField("latest", events[0].EventType)
		}
		entry.Debug("Log de auditoria atualizado")
	}))

	authenticator := authenticating.NewService(cfg, demoMode)

	leoIntegrator := leo.New(cfg, leoclient.NewClient(cfg))

	snapshotService := snapshotting.NewService(snapshotRepo, cfg.Snapshots.ListLimit)
	visionService := visioning.NewService(snapshotRepo, snapshotService, audit)
	askService := asking.NewService(snapshotRepo, snapshotService, leoIntegrator, demoMode, audit)

	// Trocar a fonte dos dados invalida o cache das sessões do drawer e encerra o log demo
	unsubscribe := demoMode.Subscribe(func(enabled bool) {
		closed := visionService.CloseAllSessions()
		demoEnded := audit.End(domain.DemoActorID)
		logrus.WithFields(logrus.Fields{
			"demo_mode":       enabled,
			"closed_sessions": closed,
			"demo_log_ended":  demoEnded,
		}).Info("Modo demo alterado")
	})
	defer unsubscribe()

	sessionSweepService := scheduler.NewSessionSweepService(visionService, audit, cfg)

	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		snapshotService,
		visionService,
		askService,
		audit,
		demoMode,
		authenticator,
		sessionSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
