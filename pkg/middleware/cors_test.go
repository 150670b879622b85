package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		origin         string
		expectedHeader string
	}{
		{
			name:           "Origem local permitida recebe os cabeçalhos de CORS",
			origin:         "http://localhost:8000",
			expectedHeader: "http://localhost:8000",
		},
		{
			name:           "Origem desconhecida não recebe cabeçalhos de CORS",
			origin:         "http://localhost:3000",
			expectedHeader: "",
		},
		{
			name:           "Requisição sem origem não recebe cabeçalhos de CORS",
			origin:         "",
			expectedHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			Cors()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCors_PreflightRespondeOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight não deve chegar ao handler")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/sync/status", nil)
	req.Header.Set("Origin", "http://localhost:8000")

	Cors()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
