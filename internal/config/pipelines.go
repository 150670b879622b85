package config

import (
	"time"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

// CellRef aponta para uma faixa de células em uma aba de uma planilha
type CellRef struct {
	SpreadsheetID string
	Worksheet     string
	Range         string
}

// Pipeline parametriza uma execução completa de sincronização: domínios de
// origem, janela de datas, filtros de canal e planilhas de destino. Cada
// entrada corresponde a uma variante que antes era um script separado.
type Pipeline struct {
	Name         string
	Variant      domain.SchemaVariant
	Domains      []domain.DomainSpec
	Destinations []domain.Destination

	// WindowDays define a janela de datas: 1 = somente hoje,
	// N > 1 = últimos N dias incluindo hoje
	WindowDays int

	// ChannelFilter é enviado no payload (filtro server-side por canal)
	ChannelFilter []string
	// SiteNameFilter é enviado no payload site_name
	SiteNameFilter []string

	// SiteAllowList e ChannelKeywords são filtros client-side aplicados
	// registro a registro (variante queda)
	SiteAllowList   []string
	ChannelKeywords []string

	// ExchangeRate indica a célula com a cotação USD→BRL da execução
	ExchangeRate CellRef
	// DashboardStamp, quando presente, recebe o timestamp da execução
	DashboardStamp *CellRef
}

// DateRange calcula o intervalo [início, fim] da janela no formato YYYY-MM-DD
func (p *Pipeline) DateRange(now time.Time) (string, string) {
	days := p.WindowDays
	if days < 1 {
		days = 1
	}
	start := now.AddDate(0, 0, -(days - 1))
	return start.Format(time.DateOnly), now.Format(time.DateOnly)
}

// domainsJN é a tabela principal de domínios/network codes monitorados
var domainsJN = []domain.DomainSpec{
	{Domain: "financecaxias.com", NetworkCode: "23148707119", Currency: domain.CurrencyUSD},
	{Domain: "zienic.com", NetworkCode: "22407091784", Currency: domain.CurrencyUSD},
	{Domain: "de8.com.br", NetworkCode: "22705810042", Currency: domain.CurrencyUSD},
	{Domain: "rendademae.com", NetworkCode: "22883124850", Currency: domain.CurrencyUSD},
	{Domain: "creativepulse23.com", NetworkCode: "23144189085", Currency: domain.CurrencyUSD},
	{Domain: "mundodasfinancas.com.br", NetworkCode: "22969181990", Currency: domain.CurrencyUSD},
	{Domain: "agoranamidia.com", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "guiabancario.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "caxiason.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "meucartaoideal.com", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "thecredito.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "meucreditoagora.com", NetworkCode: "21761578357", Currency: domain.CurrencyBRL},
	{Domain: "genialcredito.com", NetworkCode: "21938760094", Currency: domain.CurrencyBRL},
	{Domain: "netdinheiro.com.br", NetworkCode: "21629126805", Currency: domain.CurrencyBRL},
	{Domain: "usfinancemore.com", NetworkCode: "23158280633", Currency: domain.CurrencyBRL},
	{Domain: "jobscaxias.com", NetworkCode: "23158280633", Currency: domain.CurrencyBRL},
}

// domainsRent é o conjunto de domínios da planilha de rentabilidade
var domainsRent = []domain.DomainSpec{
	{Domain: "thecredito.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "meucartaoideal.com", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "caxiason.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "guiabancario.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "agoranamidia.com", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
	{Domain: "coinvistu.com", NetworkCode: "23279186968", Currency: domain.CurrencyUSD},
	{Domain: "creativepulse23.com", NetworkCode: "23144189085", Currency: domain.CurrencyUSD},
	{Domain: "genialcredito.com", NetworkCode: "21938760094", Currency: domain.CurrencyBRL},
	{Domain: "usfinancemore.com", NetworkCode: "23158280633", Currency: domain.CurrencyBRL},
	{Domain: "de8.com.br", NetworkCode: "22705810042", Currency: domain.CurrencyUSD},
	{Domain: "meucreditoagora.com", NetworkCode: "21761578357", Currency: domain.CurrencyBRL},
	{Domain: "netdinheiro.com.br", NetworkCode: "21629126805", Currency: domain.CurrencyBRL},
	{Domain: "rendademae.com", NetworkCode: "22883124850", Currency: domain.CurrencyUSD},
	{Domain: "zienic.com", NetworkCode: "22407091784", Currency: domain.CurrencyUSD},
}

// BuiltinPipelines retorna as variantes de sincronização conhecidas
func BuiltinPipelines() map[string]*Pipeline {
	pipelines := []*Pipeline{
		// Fan-out diário para as planilhas dos clientes JN
		{
			Name:       "bdgam-fanout",
			Variant:    domain.SchemaDefault,
			Domains:    domainsJN,
			WindowDays: 1,
			ChannelFilter: []string{
				"utm_source=email",
				"utm_source=activecampaign",
				"utm_source=spush",
			},
			Destinations: []domain.Destination{
				{SpreadsheetID: "1fvHP_NpmdGTQ4YJd8HXmwCmJ47OmF-FwpsxvJTtMmug"},
				{
					SpreadsheetID: "1zPJAuoIp3hCEaRVubyiFrZq3KzRAgpfp06nRW2xCKrc",
					SiteFilter: []string{
						"www.caxiason.com.br", "thecredito.com.br", "en.de8.com.br",
						"us.meucartaoideal.com", "usfinancemore.com", "en.genialcredito.com",
						"zienic.com", "us.netdinheiro.com.br", "finance.meucreditoagora.com",
						"en.rendademae.com", "us.creativepulse23.com", "en.mundodasfinancas.com.br",
					},
				},
				{SpreadsheetID: "1jjHJUu0im18BCxKUt6ZAS7FGFO3B7VQKq2S7q-01e-Q"},
				{SpreadsheetID: "1XMVYlv1Iy5dDHiMMGRpcJ2neStF13rEeo0ou9rRw7aQ"},
				{SpreadsheetID: "1lhDZGJJflyWCfYIEhNM1vho6QKPUynGSajjYxQzf8so"},
				{SpreadsheetID: "1oSXRda1J_bOe06gcqf52frCX96xQ26fjwRZPmc50Eo8"},
				{SpreadsheetID: "1AITsQmO0-Scs27hiXrSV1HFz8MtNYRZ89mBqHl58eio"},
				{SpreadsheetID: "13sa5EwmMZa8wJKaCDf6APNYZOLGKGbhm9sgSUFSn25U"},
				{SpreadsheetID: "1PBWDN0_zllMoaf0Mwg0BCDpKK27j374NX3Hqla8k1_E"},
				{SpreadsheetID: "1Xs_6Sm8b6iAguZHJsMGiR5RmRlh0RoinWxy8h5-R9fE"},
			},
			ExchangeRate: CellRef{
				SpreadsheetID: "1fvHP_NpmdGTQ4YJd8HXmwCmJ47OmF-FwpsxvJTtMmug",
				Worksheet:     "JN_US_CC",
				Range:         "O2",
			},
		},
		// Planilha única com filtro de subdomínio por URL
		{
			Name:       "bdgam-filtrado",
			Variant:    domain.SchemaDefault,
			Domains:    domainsJN[:10],
			WindowDays: 1,
			ChannelFilter: []string{
				"utm_source=email",
				"utm_source=activecampaign",
				"utm_source=spush",
			},
			Destinations: []domain.Destination{
				{SpreadsheetID: "1Lh9snLOrHPFs6AynP5pfSmh3uos7ulEOiRNJKKqPs7s"},
				{
					SpreadsheetID: "1zPJAuoIp3hCEaRVubyiFrZq3KzRAgpfp06nRW2xCKrc",
					SubdomainFilter: &domain.SubdomainFilter{
						Domain: "creativepulse23.com",
						Subdomains: []string{
							"www.caxiason.com.br", "en.rendademae.com",
							"zienic.com", "us.creativepulse23.com",
						},
					},
				},
			},
			ExchangeRate: CellRef{
				SpreadsheetID: "1Lh9snLOrHPFs6AynP5pfSmh3uos7ulEOiRNJKKqPs7s",
				Worksheet:     "JN_US_CC",
				Range:         "O2",
			},
		},
		// Planilha de rentabilidade: inclui o canal pushalert e a cotação na
		// aba "info" da própria planilha
		{
			Name:       "bdgam-rent",
			Variant:    domain.SchemaDefault,
			Domains:    domainsRent,
			WindowDays: 1,
			ChannelFilter: []string{
				"utm_source=email",
				"utm_source=activecampaign",
				"utm_source=spush",
				"utm_source=pushalert",
			},
			Destinations: []domain.Destination{
				{SpreadsheetID: "1n1WMWBkMtHA9SdQpveC8Ch7nUCCmBHnHySTqN-eY7PE"},
			},
			ExchangeRate: CellRef{
				SpreadsheetID: "1n1WMWBkMtHA9SdQpveC8Ch7nUCCmBHnHySTqN-eY7PE",
				Worksheet:     "info",
				Range:         "B1:C1",
			},
		},
		// Relatório de queda: janela de 7 dias, esquema próprio
		{
			Name:       "queda",
			Variant:    domain.SchemaQueda,
			WindowDays: 7,
			Domains: []domain.DomainSpec{
				{Domain: "de8.com.br", NetworkCode: "22705810042", Currency: domain.CurrencyUSD},
				{Domain: "creativepulse23.com", NetworkCode: "23144189085", Currency: domain.CurrencyUSD},
				{Domain: "caxiason.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
				{Domain: "thecredito.com.br", NetworkCode: "21655197668", Currency: domain.CurrencyBRL},
				{Domain: "genialcredito.com", NetworkCode: "21938760094", Currency: domain.CurrencyBRL},
				{Domain: "netdinheiro.com.br", NetworkCode: "21629126805", Currency: domain.CurrencyBRL},
			},
			SiteNameFilter: []string{
				"en.de8.com.br", "us.creativepulse23.com", "card.caxiason.com.br",
				"us.netdinheiro.com.br", "en.genialcredito.com", "finance.genialcredito.com",
				"finance.creativepulse23.com", "emp.thecredito.com.br",
			},
			SiteAllowList: []string{
				"en.de8.com.br", "us.creativepulse23.com", "card.caxiason.com.br",
				"us.netdinheiro.com.br", "en.genialcredito.com", "finance.genialcredito.com",
				"finance.creativepulse23.com", "emp.thecredito.com.br",
			},
			ChannelKeywords: []string{"utm_source=google", "utm_source=queda", "utm_medium="},
			Destinations: []domain.Destination{
				{SpreadsheetID: "1jCOT6cxUjMbXsbwt9Ak9Q12RILMw_t5qxwZkHosrgC8"},
			},
			ExchangeRate: CellRef{
				SpreadsheetID: "1jCOT6cxUjMbXsbwt9Ak9Q12RILMw_t5qxwZkHosrgC8",
				Worksheet:     "A - JN US CC - Total (G)",
				Range:         "D6:E6",
			},
			DashboardStamp: &CellRef{
				SpreadsheetID: "1jCOT6cxUjMbXsbwt9Ak9Q12RILMw_t5qxwZkHosrgC8",
				Worksheet:     "A - JN US CC - Total (G)",
				Range:         "I3",
			},
		},
	}

	byName := make(map[string]*Pipeline, len(pipelines))
	for _, p := range pipelines {
		byName[p.Name] = p
	}
	return byName
}
