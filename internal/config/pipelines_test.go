package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

func TestPipeline_DateRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		windowDays    int
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "Janela de um dia cobre somente hoje",
			windowDays:    1,
			expectedStart: "2024-06-15",
			expectedEnd:   "2024-06-15",
		},
		{
			name:          "Janela de sete dias inclui hoje",
			windowDays:    7,
			expectedStart: "2024-06-09",
			expectedEnd:   "2024-06-15",
		},
		{
			name:          "Janela inválida vira um dia",
			windowDays:    0,
			expectedStart: "2024-06-15",
			expectedEnd:   "2024-06-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pipeline{WindowDays: tt.windowDays}
			start, end := p.DateRange(now)

			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestBuiltinPipelines(t *testing.T) {
	pipelines := BuiltinPipelines()

	require.Contains(t, pipelines, "bdgam-fanout")
	require.Contains(t, pipelines, "bdgam-filtrado")
	require.Contains(t, pipelines, "bdgam-rent")
	require.Contains(t, pipelines, "queda")

	fanout := pipelines["bdgam-fanout"]
	assert.Equal(t, domain.SchemaDefault, fanout.Variant)
	assert.Len(t, fanout.Domains, 16)
	assert.Len(t, fanout.Destinations, 10)
	assert.Equal(t, 1, fanout.WindowDays)

	var fanoutDomains []string
	for _, spec := range fanout.Domains {
		fanoutDomains = append(fanoutDomains, spec.Domain)
	}
	assert.Contains(t, fanoutDomains, "jobscaxias.com")

	rent := pipelines["bdgam-rent"]
	assert.Equal(t, domain.SchemaDefault, rent.Variant)
	assert.Equal(t, 1, rent.WindowDays)
	assert.Contains(t, rent.ChannelFilter, "utm_source=pushalert")
	require.Len(t, rent.Destinations, 1)
	assert.Equal(t, "1n1WMWBkMtHA9SdQpveC8Ch7nUCCmBHnHySTqN-eY7PE", rent.Destinations[0].SpreadsheetID)
	assert.Equal(t, "info", rent.ExchangeRate.Worksheet)
	assert.Equal(t, "B1:C1", rent.ExchangeRate.Range)

	var rentDomains []string
	for _, spec := range rent.Domains {
		rentDomains = append(rentDomains, spec.Domain)
	}
	assert.Contains(t, rentDomains, "coinvistu.com")

	queda := pipelines["queda"]
	assert.Equal(t, domain.SchemaQueda, queda.Variant)
	assert.Equal(t, 7, queda.WindowDays)
	assert.NotEmpty(t, queda.SiteAllowList)
	assert.NotEmpty(t, queda.ChannelKeywords)
	require.NotNil(t, queda.DashboardStamp)
	assert.Equal(t, "I3", queda.DashboardStamp.Range)
}

func TestBuiltinPipelines_DominiosTemMoedaDefinida(t *testing.T) {
	for name, pipeline := range BuiltinPipelines() {
		for _, spec := range pipeline.Domains {
			assert.NotEmpty(t, spec.Domain, "pipeline %s", name)
			assert.NotEmpty(t, spec.NetworkCode, "pipeline %s, dominio %s", name, spec.Domain)
			assert.Contains(t, []domain.Currency{domain.CurrencyUSD, domain.CurrencyBRL}, spec.Currency)
		}
	}
}
