package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/log"
)

// RunQuickAction executa uma quick action do drawer do Leo Vision
func RunQuickAction(service visioning.Visioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunQuickAction")

		var req domain.QuickActionRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Action == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "action é obrigatório", nil)
			return
		}

		response, err := service.RunQuickAction(r.Context(), req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao executar quick action")
			return
		}

		log.AddField(r.Context(), "session_id", response.SessionID)
		writeJSON(w, r, http.StatusOK, response)
	}
}

// CloseVisionSession fecha a sessão do drawer e descarta o cache dela
func CloseVisionSession(service visioning.Visioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CloseVisionSession")

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("session_id")

		if err := service.CloseSession(r.Context(), sessionID); err != nil {
			writeUseCaseError(w, r, err, "Erro ao fechar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
