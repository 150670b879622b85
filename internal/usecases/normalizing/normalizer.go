package normalizing

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
	"github.com/jnmidia/gam-sheets-sync/pkg/utils"
)

// Normalize converte um registro bruto da API na linha canônica de saída.
// Receita e eCPM chegam em micro-unidades da moeda nativa do domínio e saem
// em USD com duas casas decimais; a conversão usa a taxa única da execução e
// acontece exatamente uma vez.
func Normalize(raw domain.RawMetricRecord, spec domain.DomainSpec, rate float64) (domain.CanonicalRow, error) {
	if len(raw) == 0 {
		return domain.CanonicalRow{}, errors.New("registro vazio")
	}

	rawDate := raw.DimensionString(domain.DimensionDate)

	row := domain.CanonicalRow{
		RawDate:    rawDate,
		DateSerial: dateSerial(rawDate),
		Hour:       utils.SafeInt(raw.Dimension(domain.DimensionHour), 0),
		Site:       raw.DimensionString(domain.DimensionSiteName),
		Channel:    raw.DimensionString(domain.DimensionChannelName),
		URL:        raw.DimensionString(domain.DimensionURLName),
		AdUnit:     raw.DimensionString(domain.DimensionAdUnitName),
		Country:    raw.DimensionString(domain.DimensionCountryName),
		Requests:   utils.SafeInt(raw.Column(domain.ColumnTotalRequests), 0),
		Clicks:     utils.SafeInt(raw.Column(domain.ColumnClicks), 0),
		RevenueUSD: microsToUSD(raw.Column(domain.ColumnRevenue), spec.Currency, rate),
		ECPMUSD:    microsToUSD(raw.Column(domain.ColumnAverageECPM), spec.Currency, rate),
		Coverage:   utils.RoundWithFourDecimalPlace(utils.SafeFloat(raw.Column(domain.ColumnMatchRate), 0)),
	}

	return row, nil
}

// dateSerial converte YYYY-MM-DD para o serial de planilha; data inválida
// passa adiante como a string original
func dateSerial(rawDate string) interface{} {
	date, err := utils.ParseDate(rawDate)
	if err != nil || date.IsZero() {
		return rawDate
	}
	return utils.DateToSerial(*date)
}

// microsToUSD divide o valor em micro-unidades por 1.000.000 e, para domínios
// em BRL, divide pela taxa de câmbio (nunca multiplica)
func microsToUSD(v interface{}, currency domain.Currency, rate float64) float64 {
	value := decimal.NewFromFloat(utils.SafeFloat(v, 0)).Shift(-6)

	if currency == domain.CurrencyBRL && rate > 0 {
		value = value.Div(decimal.NewFromFloat(rate))
	}

	return utils.RoundWithTwoDecimalPlace(value.InexactFloat64())
}
