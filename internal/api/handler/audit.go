package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

// ListAuditEvents retorna o log do ator atual, do mais recente para o mais antigo
func ListAuditEvents(audit *auditing.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAuditEvents")
		writeJSON(w, r, http.StatusOK, auditing.SortedByOccurredAt(audit.FromContext(r.Context()).Events()))
	}
}

// LogAuditEvent registra a visita a uma tela. Sem event_type vira VIEW_SCREEN.
func LogAuditEvent(audit *auditing.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LogAuditEvent")

		var req domain.LogScreenViewRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		eventType := strings.TrimSpace(req.EventType)
		if eventType == "" {
			eventType = domain.AuditEventViewScreen
		}

		event := audit.FromContext(r.Context()).Log(auditing.LogInput{
			EventType:     eventType,
			OccurredAt:    req.OccurredAt,
			SnapshotID:    req.SnapshotID,
			SnapshotLabel: req.SnapshotLabel,
			Note:          req.Note,
		})

		writeJSON(w, r, http.StatusCreated, event)
	}
}
