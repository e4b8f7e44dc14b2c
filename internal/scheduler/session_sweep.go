// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/config"
	"github.com/leora-investor/investor-os-api/internal/domain"
)

const defaultSessionMaxIdle = 30 * time.Minute

type SessionSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
	MaxIdle      time.Duration
}

// IdleSessionSweeper fecha sessões de visão ociosas.
type IdleSessionSweeper interface {
	SweepIdleSessions(maxIdle time.Duration) int
}

// ActorLogs são os logs de auditoria por ator que o sweep encerra quando o token expira.
type ActorLogs interface {
	End(actor string) bool
}

// SessionSweepService limpa sessões de visão ociosas e encerra o log dos atores cujo
// token expirou. Recebe o ator e a expiração de cada requisição autenticada.
type SessionSweepService struct {
	scheduler *gocron.Scheduler
	sessions  IdleSessionSweeper
	audit     ActorLogs
	config    SessionSweepConfig
	now       func() time.Time

	actorMutex sync.Mutex
	expiries   map[string]time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastClosedSessions  int
	lastExpiredActors   int
}

func NewSessionSweepService(
	sessions IdleSessionSweeper,
	audit ActorLogs,
	cfg *config.Config,
) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: cfg.SessionSweep.CronSchedule,
		SyncEnabled:  cfg.SessionSweep.Enabled,
		MaxIdle:      cfg.SessionSweep.MaxIdle,
	}
	if sweepConfig.MaxIdle <= 0 {
		sweepConfig.MaxIdle = defaultSessionMaxIdle
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"max_idle":      sweepConfig.MaxIdle.String(),
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		sessions:  sessions,
		audit:     audit,
		config:    sweepConfig,
		now:       time.Now,
		expiries:  map[string]time.Time{},
	}
}

func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// TrackActor guarda a expiração do token do ator. O ator demo e tokens sem
// expiração não são acompanhados.
func (s *SessionSweepService) TrackActor(actor string, expiresAt time.Time) {
	s.actorMutex.Lock()
	defer s.actorMutex.Unlock()

	if actor == "" || actor == domain.DemoActorID || expiresAt.IsZero() {
		delete(s.expiries, actor)
		return
	}
	s.expiries[actor] = expiresAt
}

// Sweep executa uma rodada de limpeza.
func (s *SessionSweepService) Sweep() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza de sessões já está em execução")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	expired := s.expireActors()
	closed := 0
	if s.sessions != nil {
		closed = s.sessions.SweepIdleSessions(s.config.MaxIdle)
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastClosedSessions = closed
	s.lastExpiredActors = expired
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"closed_sessions": closed,
		"expired_actors":  expired,
	}).Info("Limpeza de sessões concluída")
}

// expireActors encerra o log de cada ator com token vencido.
func (s *SessionSweepService) expireActors() int {
	now := s.now()

	s.actorMutex.Lock()
	var expired []string
	for actor, expiresAt := range s.expiries {
		if !now.Before(expiresAt) {
			expired = append(expired, actor)
			delete(s.expiries, actor)
		}
	}
	s.actorMutex.Unlock()

	for _, actor := range expired {
		s.audit.End(actor)
		logrus.WithField("actor", actor).Info("Token do ator expirou, log de auditoria encerrado")
	}
	return len(expired)
}

func (s *SessionSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.Sweep()
}

// GetStatus retorna o status atual do agendador
func (s *SessionSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"max_idle":               s.config.MaxIdle.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_closed_sessions":   s.lastClosedSessions,
		"last_expired_actors":    s.lastExpiredActors,
	}
}
