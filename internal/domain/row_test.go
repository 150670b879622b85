package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaVariant_Header(t *testing.T) {
	assert.Equal(t,
		[]string{"Date", "Hora", "Site", "Channel Name", "URL", "Ad Unit", "Requests", "Revenue (USD)", "Cobertura", "eCPM"},
		SchemaDefault.Header(),
	)
	assert.Equal(t,
		[]string{"Site", "Data", "Hora", "Canal", "Receita (USD)", "País", "URL", "Bloco", "Solicitações", "Cliques"},
		SchemaQueda.Header(),
	)
}

func TestCanonicalRow_Values(t *testing.T) {
	row := CanonicalRow{
		DateSerial: 45458.0,
		RawDate:    "2024-06-15",
		Hour:       14,
		Site:       "zienic.com",
		Channel:    "utm_source=email",
		URL:        "zienic.com/post",
		AdUnit:     "bloco_1",
		Country:    "Brazil",
		Requests:   1200,
		Clicks:     34,
		RevenueUSD: 10.46,
		Coverage:   0.8568,
		ECPMUSD:    2.5,
	}

	t.Run("Variante padrão segue a ordem de 10 colunas", func(t *testing.T) {
		values := row.Values(SchemaDefault)

		require.Len(t, values, 10)
		assert.Equal(t, 45458.0, values[0])
		assert.Equal(t, 14, values[1])
		assert.Equal(t, "zienic.com", values[2])
		assert.Equal(t, 0.8568, values[8])
		assert.Equal(t, 2.5, values[9])
	})

	t.Run("Variante queda usa data crua e hora como string", func(t *testing.T) {
		values := row.Values(SchemaQueda)

		require.Len(t, values, 10)
		assert.Equal(t, "zienic.com", values[0])
		assert.Equal(t, "2024-06-15", values[1])
		assert.Equal(t, "14", values[2])
		assert.Equal(t, "Brazil", values[5])
		assert.Equal(t, 34, values[9])
	})

	t.Run("Cobertura zero é serializada como inteiro literal", func(t *testing.T) {
		zeroed := row
		zeroed.Coverage = 0

		values := zeroed.Values(SchemaDefault)
		assert.Equal(t, 0, values[8])
	})
}
