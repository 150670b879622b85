package syncing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	admanagermocks "github.com/jnmidia/gam-sheets-sync/infrastructure/integrator/admanager/mocks"
	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet"
	sheetmocks "github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet/mocks"
	"github.com/jnmidia/gam-sheets-sync/internal/config"
	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Sheets: config.Sheets{SheetName: "BD - GAM"},
		Sync: config.Sync{
			ChunkSize:            10000,
			MaxWorkers:           2,
			ExchangeRateFallback: 5.35,
			Timezone:             "UTC",
		},
	}
}

func testPipeline() *config.Pipeline {
	return &config.Pipeline{
		Name:    "teste",
		Variant: domain.SchemaDefault,
		Domains: []domain.DomainSpec{
			{Domain: "zienic.com", NetworkCode: "22407091784", Currency: domain.CurrencyUSD},
			{Domain: "netdinheiro.com.br", NetworkCode: "21629126805", Currency: domain.CurrencyBRL},
		},
		WindowDays:   1,
		Destinations: []domain.Destination{{SpreadsheetID: "dest-1"}},
		ExchangeRate: config.CellRef{SpreadsheetID: "rate-sheet", Worksheet: "JN_US_CC", Range: "O2"},
	}
}

func usdRecord(site string) domain.RawMetricRecord {
	return domain.RawMetricRecord{
		"Dimension.DATE":                             "2024-06-15",
		"Dimension.HOUR":                             10,
		"Dimension.SITE_NAME":                        site,
		"Dimension.CHANNEL_NAME":                     "utm_source=email",
		"Column.AD_EXCHANGE_TOTAL_REQUESTS":          100,
		"Column.AD_EXCHANGE_LINE_ITEM_LEVEL_REVENUE": 5000000.0,
	}
}

func TestService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := admanagermocks.NewMockClient(ctrl)
	sheets := sheetmocks.NewMockService(ctrl)
	sheet := sheetmocks.NewMockSpreadsheet(ctrl)
	ws := sheetmocks.NewMockWorksheet(ctrl)

	// Cotação indisponível: a execução segue com o fallback
	sheets.EXPECT().Open(gomock.Any(), "rate-sheet").Return(nil, errors.New("indisponível"))

	// Primeiro domínio responde, segundo falha; a falha fica contida
	client.EXPECT().FetchReport(gomock.Any(), gomock.Any()).
		Return([]domain.RawMetricRecord{usdRecord("zienic.com"), usdRecord("zienic.com")}, nil)
	client.EXPECT().FetchReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("status 500"))

	sheets.EXPECT().Open(gomock.Any(), "dest-1").Return(sheet, nil)
	sheet.EXPECT().Worksheet(gomock.Any(), "BD - GAM").Return(ws, nil)
	ws.EXPECT().Clear(gomock.Any()).Return(nil)
	ws.EXPECT().RowCount().Return(30000).AnyTimes()
	ws.EXPECT().Update(gomock.Any(), "A1:J1", gomock.Any(), spreadsheet.ValueInputRaw).Return(nil)
	ws.EXPECT().Update(gomock.Any(), "A2:J3", gomock.Len(2), spreadsheet.ValueInputRaw).Return(nil)
	sheet.EXPECT().FormatDateColumn(gomock.Any(), "BD - GAM", "yyyy-MM-dd").Return(nil)

	service := NewService(client, sheets, testConfig(), testPipeline())
	report, err := service.RunOnce(context.Background())

	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 5.35, report.ExchangeRate)
	assert.Equal(t, "fallback", report.RateSource)
	assert.Equal(t, 2, report.TotalRows)
	require.Len(t, report.Fetches, 2)
	assert.Len(t, report.FailedFetches(), 1)
	require.Len(t, report.Syncs, 1)
	assert.Empty(t, report.FailedSyncs())
}

func TestService_RunOnce_FiltrosDaVarianteQueda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := admanagermocks.NewMockClient(ctrl)
	sheets := sheetmocks.NewMockService(ctrl)
	sheet := sheetmocks.NewMockSpreadsheet(ctrl)
	ws := sheetmocks.NewMockWorksheet(ctrl)

	pipeline := testPipeline()
	pipeline.Variant = domain.SchemaQueda
	pipeline.Domains = pipeline.Domains[:1]
	pipeline.SiteAllowList = []string{"zienic.com"}
	pipeline.ChannelKeywords = []string{"utm_source=google"}

	records := []domain.RawMetricRecord{
		// Passa: site permitido e canal com palavra-chave
		{
			"Dimension.DATE":         "2024-06-15",
			"Dimension.SITE_NAME":    "zienic.com",
			"Dimension.CHANNEL_NAME": "utm_source=google&m=1",
		},
		// Descartada: site fora da lista
		{
			"Dimension.DATE":         "2024-06-15",
			"Dimension.SITE_NAME":    "outro.com",
			"Dimension.CHANNEL_NAME": "utm_source=google",
		},
		// Descartada: canal vazio
		{
			"Dimension.DATE":      "2024-06-15",
			"Dimension.SITE_NAME": "zienic.com",
		},
		// Descartada: canal sem palavra-chave
		{
			"Dimension.DATE":         "2024-06-15",
			"Dimension.SITE_NAME":    "zienic.com",
			"Dimension.CHANNEL_NAME": "utm_source=email",
		},
	}

	sheets.EXPECT().Open(gomock.Any(), "rate-sheet").Return(nil, errors.New("indisponível"))
	client.EXPECT().FetchReport(gomock.Any(), gomock.Any()).Return(records, nil)

	sheets.EXPECT().Open(gomock.Any(), "dest-1").Return(sheet, nil)
	sheet.EXPECT().Worksheet(gomock.Any(), "BD - GAM").Return(ws, nil)
	ws.EXPECT().Clear(gomock.Any()).Return(nil)
	ws.EXPECT().RowCount().Return(30000).AnyTimes()
	ws.EXPECT().Update(gomock.Any(), "A1:J1", gomock.Any(), spreadsheet.ValueInputUserEntered).Return(nil)
	ws.EXPECT().Update(gomock.Any(), "A2:J2", gomock.Len(1), spreadsheet.ValueInputUserEntered).Return(nil)

	service := NewService(client, sheets, testConfig(), pipeline)
	report, err := service.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalRows)
	require.Len(t, report.Fetches, 1)
	assert.Equal(t, 3, report.Fetches[0].Skipped)
}

func TestService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := admanagermocks.NewMockClient(ctrl)
	sheets := sheetmocks.NewMockService(ctrl)

	service := NewService(client, sheets, testConfig(), testPipeline())
	status := service.GetStatus()

	assert.Equal(t, "teste", status["pipeline"])
	assert.Equal(t, false, status["sync_running"])
}
