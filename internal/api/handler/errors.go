package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/leora-investor/investor-os-api/internal/usecases/asking"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeUseCaseError converte os erros tipados dos casos de uso no erro padronizado da API.
// Os detalhes (texto do banco, da RPC) vão só para o log; o cliente recebe o erro base.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var (
		snapshotErr *snapshotting.SnapshotError
		visionErr   *visioning.VisionError
		askErr      *asking.AskError
		code        string
		base        error
	)

	switch {
	case errors.As(err, &snapshotErr):
		code, base = snapshotErr.Code, snapshotErr.Err
	case errors.As(err, &visionErr):
		code, base = visionErr.Code, visionErr.Err
	case errors.As(err, &askErr):
		code, base = askErr.Code, askErr.Err
	default:
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
		return
	}

	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Debug(message)
	}
	apiErrors.WriteError(w, code, base.Error(), nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, into any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(into)
}
