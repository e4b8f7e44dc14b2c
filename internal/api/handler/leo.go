package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/asking"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

// AskLeo responde em seções (Ask Leo v2)
func AskLeo(service asking.Asker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AskLeo")

		var req domain.AskRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		sections, err := service.Ask(r.Context(), req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao perguntar ao Leo")
			return
		}

		writeJSON(w, r, http.StatusOK, sections)
	}
}

// ChatLeo responde uma mensagem do chat (Ask Leo v1)
func ChatLeo(service asking.Asker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChatLeo")

		var req domain.ChatRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		response, err := service.Chat(r.Context(), req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro no chat do Leo")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func ListAgents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAgents")
		writeJSON(w, r, http.StatusOK, domain.Agents)
	}
}

// AskAgent roteia a pergunta para um agente do registro
func AskAgent(service asking.Asker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AskAgent")

		agentID := domain.AgentID(httprouter.ParamsFromContext(r.Context()).ByName("agent_id"))

		var req domain.AskRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		sections, err := service.AskAgent(r.Context(), agentID, req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao perguntar ao agente")
			return
		}

		writeJSON(w, r, http.StatusOK, sections)
	}
}
