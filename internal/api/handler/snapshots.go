package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/log"
)

const (
	exportStatusCopied = "Copied."
	exportStatusFailed = "—"
)

// ListSnapshots lista os snapshots visíveis para o investidor
func ListSnapshots(service snapshotting.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListSnapshots")

		query := r.URL.Query()
		filters := snapshotting.ListFilters{
			Kind:       query.Get("kind"),
			Month:      query.Get("month"),
			ProjectKey: query.Get("project_key"),
		}

		if rawLimit := strings.TrimSpace(query.Get("limit")); rawLimit != "" {
			limit, err := strconv.Atoi(rawLimit)
			if err != nil || limit <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			filters.Limit = limit
		}

		snapshots, err := service.List(r.Context(), filters)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar snapshots")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	}
}

// LatestSnapshot retorna o snapshot mais recente, ou null quando não há nenhum
func LatestSnapshot(service snapshotting.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LatestSnapshot")

		latest, err := service.Latest(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar snapshot mais recente")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"snapshot": latest})
	}
}

func GetSnapshotDetail(service snapshotting.Reader, audit *auditing.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSnapshotDetail")

		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("snapshot_id")

		detail, err := service.Detail(r.Context(), snapshotID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar snapshot")
			return
		}

		audit.FromContext(r.Context()).Log(auditing.LogInput{
			EventType: domain.AuditEventViewSnapshot,
			Snapshot:  detail.Snapshot,
		})

		writeJSON(w, r, http.StatusOK, detail)
	}
}

// ExportSnapshot devolve o pack do investidor em texto puro
func ExportSnapshot(service snapshotting.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportSnapshot")

		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("snapshot_id")

		text, _, err := service.ExportText(r.Context(), snapshotID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao exportar snapshot")
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(text)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar export")
		}
	}
}

// LogExportEvent registra o resultado de copiar/compartilhar o pack feito no cliente
func LogExportEvent(service snapshotting.Reader, audit *auditing.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LogExportEvent")

		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("snapshot_id")

		var req domain.ExportEventRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		var eventType, successStatus string
		switch req.Outcome {
		case domain.ExportOutcomeCopy:
			eventType, successStatus = domain.AuditEventExportCopy, exportStatusCopied
		case domain.ExportOutcomeShare:
			eventType = domain.AuditEventExportShare
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "outcome deve ser copy ou share", nil)
			return
		}

		snapshot, err := service.Find(r.Context(), snapshotID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar snapshot")
			return
		}

		if !req.Success {
			writeJSON(w, r, http.StatusOK, domain.ExportEventResponse{Status: exportStatusFailed})
			return
		}

		event := audit.FromContext(r.Context()).Log(auditing.LogInput{
			EventType: eventType,
			Snapshot:  snapshot,
		})

		writeJSON(w, r, http.StatusOK, domain.ExportEventResponse{Status: successStatus, Event: &event})
	}
}

func GetContextPack(service snapshotting.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetContextPack")

		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("snapshot_id")
		query := r.URL.Query()
		route := domain.ParseRoute(query.Get("route"))

		pack, err := service.ContextPack(r.Context(), snapshotID, route, query.Get("screen_title"))
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao montar context pack")
			return
		}

		writeJSON(w, r, http.StatusOK, pack)
	}
}
