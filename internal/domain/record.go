package domain

// Nomes de dimensões e colunas aceitos pela API de relatórios do Ad Manager
const (
	DimensionDate        = "DATE"
	DimensionHour        = "HOUR"
	DimensionSiteName    = "SITE_NAME"
	DimensionChannelName = "CHANNEL_NAME"
	DimensionCountryName = "COUNTRY_NAME"
	DimensionURLName     = "URL_NAME"
	DimensionAdUnitName  = "AD_UNIT_NAME"

	ColumnTotalRequests = "AD_EXCHANGE_TOTAL_REQUESTS"
	ColumnRevenue       = "AD_EXCHANGE_LINE_ITEM_LEVEL_REVENUE"
	ColumnMatchRate     = "AD_EXCHANGE_MATCH_RATE"
	ColumnAverageECPM   = "AD_EXCHANGE_LINE_ITEM_LEVEL_AVERAGE_ECPM"
	ColumnClicks        = "AD_EXCHANGE_LINE_ITEM_LEVEL_CLICKS"
)

// RawMetricRecord é um registro bruto da API de relatórios. As chaves seguem o
// padrão "Dimension.<NOME>" e "Column.<NOME>" e os valores podem chegar como
// número ou string dependendo do relatório.
type RawMetricRecord map[string]interface{}

// Dimension retorna o valor bruto de uma dimensão
func (r RawMetricRecord) Dimension(name string) interface{} {
	return r["Dimension."+name]
}

// DimensionString retorna uma dimensão como string, vazia quando ausente
func (r RawMetricRecord) DimensionString(name string) string {
	if v, ok := r["Dimension."+name].(string); ok {
		return v
	}
	return ""
}

// Column retorna o valor bruto de uma coluna de métrica
func (r RawMetricRecord) Column(name string) interface{} {
	return r["Column."+name]
}
