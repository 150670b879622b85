package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

func record(fields map[string]interface{}) domain.RawMetricRecord {
	base := domain.RawMetricRecord{
		"Dimension.DATE":                              "2024-06-15",
		"Dimension.HOUR":                              14,
		"Dimension.SITE_NAME":                         "en.rendademae.com",
		"Dimension.CHANNEL_NAME":                      "utm_source=email",
		"Dimension.URL_NAME":                          "en.rendademae.com/artigo",
		"Dimension.AD_UNIT_NAME":                      "bloco_1",
		"Column.AD_EXCHANGE_TOTAL_REQUESTS":           1200,
		"Column.AD_EXCHANGE_LINE_ITEM_LEVEL_REVENUE":  10000000.0,
		"Column.AD_EXCHANGE_MATCH_RATE":               0.8567,
		"Column.AD_EXCHANGE_LINE_ITEM_LEVEL_AVERAGE_ECPM": 2500000.0,
	}
	for k, v := range fields {
		base[k] = v
	}
	return base
}

func TestNormalize(t *testing.T) {
	specUSD := domain.DomainSpec{Domain: "rendademae.com", NetworkCode: "22883124850", Currency: domain.CurrencyUSD}
	specBRL := domain.DomainSpec{Domain: "netdinheiro.com.br", NetworkCode: "21629126805", Currency: domain.CurrencyBRL}

	tests := []struct {
		name     string
		record   domain.RawMetricRecord
		spec     domain.DomainSpec
		rate     float64
		validate func(t *testing.T, row domain.CanonicalRow)
	}{
		{
			name:   "Domínio USD divide apenas por micro-unidades",
			record: record(nil),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 10.0, row.RevenueUSD)
				assert.Equal(t, 2.5, row.ECPMUSD)
			},
		},
		{
			name:   "Domínio BRL divide pela taxa de câmbio",
			record: record(nil),
			spec:   specBRL,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 2.0, row.RevenueUSD)
				assert.Equal(t, 0.5, row.ECPMUSD)
			},
		},
		{
			name:   "Receita é arredondada para duas casas",
			record: record(map[string]interface{}{"Column.AD_EXCHANGE_LINE_ITEM_LEVEL_REVENUE": 10456789.0}),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 10.46, row.RevenueUSD)
			},
		},
		{
			name:   "Cobertura é arredondada para quatro casas",
			record: record(map[string]interface{}{"Column.AD_EXCHANGE_MATCH_RATE": 0.85678}),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 0.8568, row.Coverage)
			},
		},
		{
			name:   "Data válida vira serial de planilha",
			record: record(nil),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 45458.0, row.DateSerial)
				assert.Equal(t, "2024-06-15", row.RawDate)
			},
		},
		{
			name:   "Data inválida passa adiante como string",
			record: record(map[string]interface{}{"Dimension.DATE": "15/06/2024"}),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, "15/06/2024", row.DateSerial)
			},
		},
		{
			name:   "Data vazia passa adiante como string vazia",
			record: record(map[string]interface{}{"Dimension.DATE": ""}),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, "", row.DateSerial)
			},
		},
		{
			name:   "Hora como string decimal é truncada",
			record: record(map[string]interface{}{"Dimension.HOUR": "14.0"}),
			spec:   specUSD,
			rate:   5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 14, row.Hour)
			},
		},
		{
			name:   "Métricas ausentes viram zero",
			record: record(map[string]interface{}{
				"Column.AD_EXCHANGE_TOTAL_REQUESTS":          nil,
				"Column.AD_EXCHANGE_LINE_ITEM_LEVEL_REVENUE": nil,
			}),
			spec: specUSD,
			rate: 5.0,
			validate: func(t *testing.T, row domain.CanonicalRow) {
				assert.Equal(t, 0, row.Requests)
				assert.Equal(t, 0.0, row.RevenueUSD)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Normalize(tt.record, tt.spec, tt.rate)
			require.NoError(t, err)
			tt.validate(t, row)
		})
	}
}

func TestNormalize_RegistroVazio(t *testing.T) {
	_, err := Normalize(domain.RawMetricRecord{}, domain.DomainSpec{}, 5.0)
	assert.Error(t, err)
}

func TestNormalize_TaxaZeroNaoDivide(t *testing.T) {
	spec := domain.DomainSpec{Domain: "netdinheiro.com.br", Currency: domain.CurrencyBRL}

	row, err := Normalize(record(nil), spec, 0)
	require.NoError(t, err)

	// Sem taxa válida o valor fica na moeda original, nunca dividido por zero
	assert.Equal(t, 10.0, row.RevenueUSD)
}
