package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnmidia/gam-sheets-sync/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func TestLoggingMiddleware_PropagaCorrelationID(t *testing.T) {
	var correlationID string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)

	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLogPanicMiddleware_RespondeErroInterno(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)

	LogPanicMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
