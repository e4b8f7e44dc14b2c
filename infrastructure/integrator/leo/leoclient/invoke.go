package leoclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/infrastructure/integrator/leo/leodomain"
	"github.com/leora-investor/investor-os-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 512

// Invoke chama uma edge function via POST. Sem token do usuário, a chave anônima vai
// no Authorization.
func (c *LeoClient) Invoke(ctx context.Context, function string, payload leodomain.AskPayload, accessToken string) (leodomain.Envelope, error) {
	endpoint, err := c.cfg.Supabase.FunctionURL(function)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	bearer := strings.TrimSpace(accessToken)
	if bearer == "" {
		bearer = c.cfg.Supabase.AnonKey
	}
	req.Header.Set("apikey", c.cfg.Supabase.AnonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.debug("invoke: start", logrus.Fields{"function": function, "snapshot_id": payload.SnapshotContext.SnapshotID})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao chamar a edge function %s", function)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := string(raw)
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		c.debug("invoke: error", logrus.Fields{"function": function, "status": resp.StatusCode})
		return nil, &leodomain.FunctionError{Function: function, StatusCode: resp.StatusCode, Body: text}
	}

	envelope := leodomain.Envelope{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return envelope, nil
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// corpo que não é objeto JSON vira envelope vazio e cai no fallback de normalização
		c.debug("invoke: resposta não é objeto JSON", logrus.Fields{"function": function})
		return leodomain.Envelope{}, nil
	}

	fields := logrus.Fields{"function": function, "keys": len(envelope)}
	if c.cfg.Leo.Diagnostics {
		fields["envelope"] = utils.PrettyJson(envelope)
	}
	c.debug("invoke: success", fields)
	return envelope, nil
}

func (c *LeoClient) debug(msg string, fields logrus.Fields) {
	if !c.cfg.Leo.Diagnostics && !c.cfg.App.IsDevelopment() {
		return
	}
	logrus.WithFields(fields).Debug("leo: " + msg)
}
