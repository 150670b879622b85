package domain

import "strconv"

// SchemaVariant identifica o layout de saída da aba "BD - GAM"
type SchemaVariant string

const (
	// SchemaDefault é o layout padrão de 10 colunas com data serial
	SchemaDefault SchemaVariant = "default"
	// SchemaQueda é o layout usado pelos relatórios de queda de tráfego
	SchemaQueda SchemaVariant = "queda"
)

// Header retorna o cabeçalho fixo de 10 colunas da variante
func (v SchemaVariant) Header() []string {
	if v == SchemaQueda {
		return []string{"Site", "Data", "Hora", "Canal", "Receita (USD)", "País", "URL", "Bloco", "Solicitações", "Cliques"}
	}
	return []string{"Date", "Hora", "Site", "Channel Name", "URL", "Ad Unit", "Requests", "Revenue (USD)", "Cobertura", "eCPM"}
}

// CanonicalRow é a linha normalizada produzida a partir de um RawMetricRecord.
// Receita e eCPM estão sempre em USD, convertidos uma única vez com a taxa da
// execução.
type CanonicalRow struct {
	// DateSerial é o número serial de planilha da data, ou a string original
	// quando a data não pôde ser interpretada
	DateSerial interface{}
	RawDate    string
	Hour       int
	Site       string
	Channel    string
	URL        string
	AdUnit     string
	Country    string
	Requests   int
	Clicks     int
	RevenueUSD float64
	// Coverage é a taxa de preenchimento; o valor exato 0 é serializado como o
	// inteiro literal 0, nunca como 0.0000
	Coverage float64
	ECPMUSD  float64
}

// Values serializa a linha na ordem de colunas da variante
func (r CanonicalRow) Values(variant SchemaVariant) []interface{} {
	if variant == SchemaQueda {
		return []interface{}{
			r.Site,
			r.RawDate,
			strconv.Itoa(r.Hour),
			r.Channel,
			r.RevenueUSD,
			r.Country,
			r.URL,
			r.AdUnit,
			r.Requests,
			r.Clicks,
		}
	}

	var coverage interface{}
	if r.Coverage == 0 {
		coverage = 0
	} else {
		coverage = r.Coverage
	}

	return []interface{}{
		r.DateSerial,
		r.Hour,
		r.Site,
		r.Channel,
		r.URL,
		r.AdUnit,
		r.Requests,
		r.RevenueUSD,
		coverage,
		r.ECPMUSD,
	}
}
