package handler

import (
	"net/http"

	"github.com/jnmidia/gam-sheets-sync/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(services SyncServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/:pipeline/run",
			Method:  http.MethodPost,
			Handler: RunSync(services),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(services),
		},
	}
}
