package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde o status do serviço e o horário atual
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
