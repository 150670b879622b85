package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/jnmidia/gam-sheets-sync/internal/usecases/syncing"
	"github.com/jnmidia/gam-sheets-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SyncServices mapeia o nome de cada pipeline para seu serviço de sincronização
type SyncServices map[string]*syncing.Service

// RunSync dispara manualmente a sincronização de um pipeline específico,
// ou de todos quando o nome é "all"
func RunSync(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("pipeline")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pipeline não especificado", nil)
			return
		}

		if name == "all" {
			for _, service := range services {
				service.TriggerManualSync()
			}
		} else {
			service, ok := services[name]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrPipelineNotFound, "Pipeline desconhecido: "+name, nil)
				return
			}
			service.TriggerManualSync()
		}

		logrus.WithField("pipeline", name).Info("Sincronização disparada via API")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "accepted",
			"pipeline": name,
		})
	}
}

// GetSyncStatus retorna o status de todos os pipelines
func GetSyncStatus(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, service := range services {
			status[name] = service.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
