package leo

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leoclient"
	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leodomain"
	"github.com/leora-investor/investor-os-api/internal/config"
	"github.com/leora-investor/investor-os-api/internal/domain"
)

// AskInput é a pergunta já com o contexto do snapshot montado.
type AskInput struct {
	Question        string
	SnapshotContext domain.SnapshotContext
	Snapshot        *domain.Snapshot
	AccessToken     string
}

//go:generate mockgen -source=service.go -destination=mocks/leo.go -package=mocks
type LeoIntegrator interface {
	AskSections(ctx context.Context, in AskInput) (domain.LeoSections, error)
	Chat(ctx context.Context, in AskInput) (domain.LeoAnswer, error)
}

type LeoService struct {
	cfg    *config.Config
	Client leoclient.Client
}

func New(cfg *config.Config, client leoclient.Client) LeoIntegrator {
	return &LeoService{
		cfg:    cfg,
		Client: client,
	}
}

// AskSections chama o Ask Leo v2. Pergunta em branco não gera chamada.
func (s *LeoService) AskSections(ctx context.Context, in AskInput) (domain.LeoSections, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return domain.NotAvailableSections(), nil
	}

	envelope, err := s.Client.Invoke(ctx, s.cfg.Leo.FunctionV2, leodomain.AskPayload{
		Question:        question,
		SnapshotID:      in.SnapshotContext.SnapshotID,
		SnapshotContext: in.SnapshotContext,
		ActiveSnapshot:  leodomain.NewActiveSnapshot(in.Snapshot),
	}, in.AccessToken)
	if err != nil {
		logrus.WithError(err).
			WithField("snapshot_id", in.SnapshotContext.SnapshotID).
			Error("leo: falha ao chamar ask v2")
		return domain.LeoSections{}, err
	}

	return NormalizeSections(envelope), nil
}

// Chat chama o Ask Leo v1 (mensagem com evidências).
func (s *LeoService) Chat(ctx context.Context, in AskInput) (domain.LeoAnswer, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return domain.LeoAnswer{AnswerText: "—", Evidence: domain.EmptyEvidence()}, nil
	}

	envelope, err := s.Client.Invoke(ctx, s.cfg.Leo.FunctionV1, leodomain.AskPayload{
		Question:        question,
		SnapshotContext: in.SnapshotContext,
		ActiveSnapshot:  leodomain.NewActiveSnapshot(in.Snapshot),
	}, in.AccessToken)
	if err != nil {
		logrus.WithError(err).
			WithField("snapshot_id", in.SnapshotContext.SnapshotID).
			Error("leo: falha ao chamar ask v1")
		return domain.LeoAnswer{}, err
	}

	return NormalizeAnswer(envelope), nil
}
