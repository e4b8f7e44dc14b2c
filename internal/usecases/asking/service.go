package asking

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo"
	"github.com/leora-investor/investor-os-api/infrastructure/repository"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/packing"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/utils"
)

const messageIDSize = 12

type Asker interface {
	Ask(ctx context.Context, req domain.AskRequest) (domain.LeoSections, error)
	AskAgent(ctx context.Context, agentID domain.AgentID, req domain.AskRequest) (domain.LeoSections, error)
	Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
}

// Service responde perguntas livres ao Leo. Com o modo demo ligado nunca chama a rede.
type Service struct {
	repo      repository.SnapshotRepository
	snapshots snapshotting.Reader
	leo       leo.LeoIntegrator
	demo      repository.DemoFlag
	audit     *auditing.Registry
}

func NewService(
	repo repository.SnapshotRepository,
	snapshots snapshotting.Reader,
	leoIntegrator leo.LeoIntegrator,
	demo repository.DemoFlag,
	audit *auditing.Registry,
) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		leo:       leoIntegrator,
		demo:      demo,
		audit:     audit,
	}
}

// Ask responde em seções (v2). Falhas do assistente viram a frase de indisponibilidade.
func (s *Service) Ask(ctx context.Context, req domain.AskRequest) (domain.LeoSections, error) {
	return s.askSections(ctx, req, "Ask Leo")
}

// AskAgent encaminha a pergunta para um agente. Agentes bloqueados respondem sem chamada.
func (s *Service) AskAgent(ctx context.Context, agentID domain.AgentID, req domain.AskRequest) (domain.LeoSections, error) {
	agent, ok := domain.FindAgent(agentID)
	if !ok {
		return domain.LeoSections{}, NewAskError(ErrAgentNotFound, apiErrors.ErrAgentNotFound, string(agentID), "")
	}

	if !agent.Enabled {
		return withMissing(domain.NotAvailableSections()), nil
	}

	return s.askSections(ctx, req, "Ask Agent: "+agent.Name)
}

func (s *Service) askSections(ctx context.Context, req domain.AskRequest, note string) (domain.LeoSections, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return withMissing(domain.NotAvailableSections()), nil
	}

	snapshot, err := s.findSnapshot(ctx, req.SnapshotID)
	if err != nil {
		return domain.LeoSections{}, err
	}
	if snapshot == nil {
		return withMissing(domain.NotAvailableSections()), nil
	}

	s.logAsk(ctx, snapshot, note)

	data := s.snapshots.LoadData(ctx, snapshot)

	if s.demoEnabled() {
		answer := visioning.RenderAnswer(visioning.RenderInput{
			Action:  visioning.InferAction(question),
			Current: packFor(domain.ParseRoute(string(req.Route)), snapshot, data),
		})

		return withMissing(domain.LeoSections{
			Summary:       packing.NonEmptyOrDash(answer),
			WhatChanged:   packing.Dash,
			Context:       packing.Dash,
			Citations:     citationsFromSources(data.Sources),
			Deterministic: true,
		}), nil
	}

	sections, err := s.leo.AskSections(ctx, leo.AskInput{
		Question:        question,
		SnapshotContext: SnapshotContextFrom(snapshot, data),
		Snapshot:        snapshot,
		AccessToken:     accessToken(ctx),
	})
	if err != nil {
		logrus.WithError(err).WithField("snapshot_id", snapshot.ID).Warn("asking: assistente indisponível")
		failed := withMissing(domain.NotAvailableSections())
		failed.Error = domain.LeoUnavailable
		return failed, nil
	}

	if strings.TrimSpace(sections.Summary) == "" {
		sections.Summary = domain.NotAvailableInSnapshot
	}
	if sections.Summary != domain.NotAvailableInSnapshot {
		sections.WhatChanged = packing.NonEmptyOrDash(sections.WhatChanged)
		sections.Context = packing.NonEmptyOrDash(sections.Context)
	}
	if sections.Citations == nil {
		sections.Citations = []domain.LeoCitation{}
	}

	return withMissing(sections), nil
}

// Chat responde uma mensagem do drawer (v1) com as evidências usadas.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	question := strings.TrimSpace(req.Question)
	resp := domain.ChatResponse{
		Question: domain.ChatMessage{ID: newMessageID(), Role: domain.ChatRoleUser, Text: question},
	}

	snapshot, err := s.findSnapshot(ctx, req.SnapshotID)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	if snapshot == nil {
		resp.Answer = assistantMessage(domain.NotAvailableInSnapshot, domain.EmptyEvidence())
		return resp, nil
	}

	s.logAsk(ctx, snapshot, "Ask Leo chat")

	data := s.snapshots.LoadData(ctx, snapshot)

	if s.demoEnabled() {
		resp.Answer = assistantMessage(s.demoChatAnswer(ctx, question, domain.ParseRoute(string(req.Route)), snapshot, data), domain.EmptyEvidence())
		return resp, nil
	}

	answer, err := s.leo.Chat(ctx, leo.AskInput{
		Question:        question,
		SnapshotContext: SnapshotContextFrom(snapshot, data),
		Snapshot:        snapshot,
		AccessToken:     accessToken(ctx),
	})
	if err != nil {
		logrus.WithError(err).WithField("snapshot_id", snapshot.ID).Warn("asking: chat indisponível")
		resp.Answer = assistantMessage(domain.LeoUnavailable, domain.EmptyEvidence())
		return resp, nil
	}

	resp.Answer = assistantMessage(packing.NonEmptyOrDash(answer.AnswerText), answer.Evidence)
	return resp, nil
}

// demoChatAnswer responde pelo renderizador determinístico, com o snapshot anterior
// quando a pergunta é sobre mudanças.
func (s *Service) demoChatAnswer(ctx context.Context, question string, route domain.Route, snapshot *domain.Snapshot, data domain.SnapshotData) string {
	action := visioning.InferAction(question)

	current := packFor(route, snapshot, data)

	var previous *domain.ContextPack
	if action == domain.QuickActionWhatChanged {
		if prev := visioning.FindPrevious(ctx, s.repo, snapshot); prev != nil {
			pack := packFor(route, prev, s.snapshots.LoadData(ctx, prev))
			previous = &pack
		}
	}

	return visioning.RenderAnswer(visioning.RenderInput{
		Action:   action,
		Current:  current,
		Previous: previous,
	})
}

// findSnapshot devolve nil, sem erro, quando nenhum snapshot foi informado.
func (s *Service) findSnapshot(ctx context.Context, snapshotID string) (*domain.Snapshot, error) {
	if strings.TrimSpace(snapshotID) == "" {
		return nil, nil
	}
	return s.snapshots.Find(ctx, snapshotID)
}

func (s *Service) demoEnabled() bool {
	return s.demo != nil && s.demo.Enabled()
}

// logAsk registra a pergunta no log do ator da requisição.
func (s *Service) logAsk(ctx context.Context, snapshot *domain.Snapshot, note string) {
	s.audit.FromContext(ctx).Log(auditing.LogInput{
		EventType: domain.AuditEventAskLeo,
		Snapshot:  snapshot,
		Note:      &note,
	})
}

func packFor(route domain.Route, snapshot *domain.Snapshot, data domain.SnapshotData) domain.ContextPack {
	return packing.BuildContextPack(packing.ContextPackInput{
		ScreenTitle: route.Title(),
		Route:       route,
		Snapshot:    snapshot,
		Position:    data.Position,
		Metrics:     data.Metrics,
		Sources:     data.Sources,
	})
}

func citationsFromSources(sources []domain.SnapshotSource) []domain.LeoCitation {
	citations := make([]domain.LeoCitation, 0, len(sources))
	for _, src := range sources {
		citations = append(citations, domain.LeoCitation{
			Title: packing.NonEmptyOrDashPtr(src.Title),
			Type:  packing.NonEmptyOrDashPtr(src.SourceType),
			Date:  packing.Dash,
			URL:   packing.NonEmptyOrDashPtr(src.URL),
		})
	}
	return citations
}

func withMissing(sections domain.LeoSections) domain.LeoSections {
	sections.Missing = sections.MissingSections()
	return sections
}

func assistantMessage(text string, evidence domain.LeoEvidence) domain.ChatMessage {
	return domain.ChatMessage{
		ID:       newMessageID(),
		Role:     domain.ChatRoleAssistant,
		Text:     text,
		Evidence: &evidence,
	}
}

func newMessageID() string {
	return utils.GenerateID(messageIDSize)
}

func accessToken(ctx context.Context) string {
	if claims := domain.ClaimsFromContext(ctx); claims != nil {
		return claims.AccessToken
	}
	return ""
}
