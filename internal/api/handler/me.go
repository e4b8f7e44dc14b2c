package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/usecases/authenticating"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

// GetMe retorna os dados da tela Account
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMe")

		me, err := service.Me(r.Context())
		if err != nil {
			logrus.WithError(err).Warn("Erro ao montar dados do usuário")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, me)
	}
}
