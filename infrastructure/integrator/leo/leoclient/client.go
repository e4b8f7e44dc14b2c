package leoclient

import (
	"context"
	"net/http"
	"time"

	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leodomain"
	"github.com/leora-investor/investor-os-api/internal/config"
)

const defaultTimeout = 30 * time.Second

//go:generate mockgen -source=client.go -destination=../mocks/leoclient.go -package=mocks
type Client interface {
	Invoke(ctx context.Context, function string, payload leodomain.AskPayload, accessToken string) (leodomain.Envelope, error)
}

type LeoClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

// NewClient cria o cliente das edge functions. O timeout vem da configuração; não há retry.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Leo.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LeoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}
