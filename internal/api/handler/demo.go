package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/demo"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

type DemoModeResponse struct {
	Available bool `json:"available"`
	Enabled   bool `json:"enabled"`
}

type SetDemoModeRequest struct {
	Enabled *bool `json:"enabled"`
}

func GetDemoMode(mode *demo.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDemoMode")
		writeJSON(w, r, http.StatusOK, DemoModeResponse{Available: mode.Available(), Enabled: mode.Enabled()})
	}
}

// SetDemoMode liga/desliga o modo demo. Sem corpo alterna o estado atual.
// Trocar o modo troca o ator de quem pediu (demo ou usuário): o log do usuário e o log
// demo são encerrados.
func SetDemoMode(mode *demo.Mode, audit *auditing.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetDemoMode")

		var req SetDemoModeRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		before := mode.Enabled()
		if req.Enabled == nil {
			mode.Toggle()
		} else {
			mode.Set(*req.Enabled)
		}

		if mode.Enabled() != before {
			audit.End(domain.DemoActorID)
			if claims := domain.ClaimsFromContext(r.Context()); claims != nil {
				audit.End(claims.UserID())
			}
		}

		writeJSON(w, r, http.StatusOK, DemoModeResponse{Available: mode.Available(), Enabled: mode.Enabled()})
	}
}
