package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/pkg/utils"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(utils.ISOTimestamp(time.Now()))); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
