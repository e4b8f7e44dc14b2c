package visioning

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/repository"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/packing"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.sessions.now = now
		}
	}
}

type Visioner interface {
	RunQuickAction(ctx context.Context, req domain.QuickActionRequest) (*domain.QuickActionResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// Service atende o drawer do Leo Vision: quick actions determinísticas sobre o snapshot ativo.
type Service struct {
	repo      repository.SnapshotRepository
	snapshots snapshotting.Reader
	audit     *auditing.Registry
	sessions  *sessionRegistry
}

func NewService(repo repository.SnapshotRepository, snapshots snapshotting.Reader, audit *auditing.Registry, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		snapshots: snapshots,
		audit:     audit,
		sessions:  newSessionRegistry(time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) RunQuickAction(ctx context.Context, req domain.QuickActionRequest) (*domain.QuickActionResponse, error) {
	if !req.Action.Valid() {
		return nil, NewVisionError(ErrInvalidAction, apiErrors.ErrInvalidFormat, req.SessionID, string(req.Action))
	}

	snapshot, err := s.resolveSnapshot(ctx, req.SnapshotID)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.acquire(sessionOwner(ctx), strings.TrimSpace(req.SessionID))
	route := domain.ParseRoute(string(req.Route))
	screenTitle := strings.TrimSpace(req.ScreenTitle)
	if screenTitle == "" {
		screenTitle = route.Title()
	}

	data := s.sessions.load(ctx, sess, snapshot, s.snapshots.LoadData)
	current := buildPack(screenTitle, route, snapshot, data)

	var previous *domain.ContextPack
	if req.Action == domain.QuickActionWhatChanged {
		if prev := FindPrevious(ctx, s.repo, snapshot); prev != nil {
			pack := buildPack(screenTitle, route, prev, s.snapshots.LoadData(ctx, prev))
			previous = &pack
		}
	}

	answer := RenderAnswer(RenderInput{
		Action:   req.Action,
		Current:  current,
		Previous: previous,
	})

	label := req.Action.Label()
	s.audit.FromContext(ctx).Log(auditing.LogInput{
		EventType: domain.AuditEventLeoQuickAction,
		Snapshot:  snapshot,
		Note:      &label,
	})

	logrus.WithFields(logrus.Fields{
		"session_id": sess.id,
		"action":     req.Action,
		"route":      route,
	}).Debug("visioning: quick action respondida")

	return &domain.QuickActionResponse{
		SessionID:  sess.id,
		Action:     req.Action,
		Label:      label,
		AnswerText: answer,
	}, nil
}

// resolveSnapshot usa o snapshot informado ou, sem id, o mais recente. Nenhum snapshot não é erro.
func (s *Service) resolveSnapshot(ctx context.Context, snapshotID string) (*domain.Snapshot, error) {
	if strings.TrimSpace(snapshotID) != "" {
		return s.snapshots.Find(ctx, snapshotID)
	}
	return s.snapshots.Latest(ctx)
}

func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	if !s.sessions.close(sessionOwner(ctx), strings.TrimSpace(sessionID)) {
		return NewVisionError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID, "")
	}
	return nil
}

// SweepIdleSessions fecha sessões ociosas há mais de maxIdle.
func (s *Service) SweepIdleSessions(maxIdle time.Duration) int {
	return s.sessions.sweep(maxIdle)
}

// CloseAllSessions descarta todas as sessões abertas e o cache delas.
func (s *Service) CloseAllSessions() int {
	return s.sessions.closeAll()
}

func (s *Service) OpenSessions() int {
	return s.sessions.count()
}

// sessionOwner é o usuário dono das sessões da requisição.
func sessionOwner(ctx context.Context) string {
	if claims := domain.ClaimsFromContext(ctx); claims != nil {
		return claims.UserID()
	}
	return ""
}

func buildPack(screenTitle string, route domain.Route, snapshot *domain.Snapshot, data domain.SnapshotData) domain.ContextPack {
	return packing.BuildContextPack(packing.ContextPackInput{
		ScreenTitle: screenTitle,
		Route:       route,
		Snapshot:    snapshot,
		Position:    data.Position,
		Metrics:     data.Metrics,
		Sources:     data.Sources,
	})
}
