package syncing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jnmidia/gam-sheets-sync/infrastructure/integrator/admanager"
	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet"
	"github.com/jnmidia/gam-sheets-sync/internal/config"
	"github.com/jnmidia/gam-sheets-sync/internal/domain"
	"github.com/jnmidia/gam-sheets-sync/internal/usecases/exchanging"
	"github.com/jnmidia/gam-sheets-sync/internal/usecases/normalizing"
	"github.com/jnmidia/gam-sheets-sync/internal/usecases/routing"
)

const stampLayout = "02/01/2006 15:04:05"

// Service orquestra uma execução completa do pipeline: cotação, busca por
// domínio, normalização, roteamento e gravação nos destinos
type Service struct {
	pipeline     *config.Pipeline
	appConfig    *config.Config
	client       admanager.Client
	sheets       spreadsheet.Service
	resolver     *exchanging.Resolver
	synchronizer *Synchronizer

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RunReport
}

// NewService cria o serviço de sincronização de um pipeline
func NewService(
	client admanager.Client,
	sheets spreadsheet.Service,
	appConfig *config.Config,
	pipeline *config.Pipeline,
) *Service {
	return &Service{
		pipeline:     pipeline,
		appConfig:    appConfig,
		client:       client,
		sheets:       sheets,
		resolver:     exchanging.NewResolver(sheets, appConfig.Sync.ExchangeRateFallback),
		synchronizer: NewSynchronizer(sheets, appConfig.Sheets.SheetName, appConfig.Sync.ChunkSize, pipeline.Variant),
		syncRunning:  false,
	}
}

// RunOnce executa o pipeline do início ao fim e retorna o relatório da
// execução. Falhas de domínios ou destinos individuais ficam contidas nos
// resultados; o erro de retorno indica apenas falhas que impedem a execução.
func (s *Service) RunOnce(ctx context.Context) (*domain.RunReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("pipeline", s.pipeline.Name).
			Info("Sincronização já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	now := time.Now().In(s.location())
	startDate, endDate := s.pipeline.DateRange(now)

	report := &domain.RunReport{
		Pipeline:  s.pipeline.Name,
		StartDate: startDate,
		EndDate:   endDate,
		StartedAt: now,
	}

	logrus.WithFields(logrus.Fields{
		"pipeline":   s.pipeline.Name,
		"start_date": startDate,
		"end_date":   endDate,
		"dominios":   len(s.pipeline.Domains),
		"destinos":   len(s.pipeline.Destinations),
	}).Info("Iniciando sincronização")

	// A cotação é resolvida uma única vez e vale para todos os domínios BRL
	report.ExchangeRate, report.RateSource = s.resolver.Resolve(ctx, s.pipeline.ExchangeRate)

	var rows []domain.CanonicalRow
	for _, spec := range s.pipeline.Domains {
		outcome := s.fetchDomain(ctx, spec, startDate, endDate, report.ExchangeRate, &rows)
		report.Fetches = append(report.Fetches, outcome)
	}
	report.TotalRows = len(rows)

	if s.pipeline.DashboardStamp != nil {
		s.writeStamp(ctx, *s.pipeline.DashboardStamp, now)
	}

	partitions := routing.Route(rows, s.pipeline.Destinations)
	report.Syncs = s.synchronizer.FanOut(ctx, partitions, s.appConfig.Sync.MaxWorkers)

	report.FinishedAt = time.Now().In(s.location())
	s.syncMutex.Lock()
	s.lastReport = report
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"pipeline":        s.pipeline.Name,
		"linhas":          report.TotalRows,
		"falhas_busca":    len(report.FailedFetches()),
		"falhas_gravacao": len(report.FailedSyncs()),
		"duracao":         report.Duration().Round(time.Second).String(),
	}).Info("Sincronização concluída")

	return report, nil
}

// fetchDomain busca e normaliza os registros de um domínio, acumulando as
// linhas válidas. Falha de busca de um domínio não interrompe os demais.
func (s *Service) fetchDomain(
	ctx context.Context,
	spec domain.DomainSpec,
	startDate, endDate string,
	rate float64,
	rows *[]domain.CanonicalRow,
) domain.FetchOutcome {
	outcome := domain.FetchOutcome{Domain: spec.Domain}

	req := admanager.NewReportRequest(
		spec, s.pipeline.Variant, startDate, endDate,
		s.pipeline.SiteNameFilter, s.pipeline.ChannelFilter,
	)

	records, err := s.client.FetchReport(ctx, req)
	if err != nil {
		logrus.WithError(err).WithField("dominio", spec.Domain).
			Error("Erro ao buscar relatório do domínio")
		outcome.Err = err
		return outcome
	}

	for _, record := range records {
		row, err := normalizing.Normalize(record, spec, rate)
		if err != nil {
			outcome.Skipped++
			continue
		}

		if !s.keepRow(row) {
			outcome.Skipped++
			continue
		}

		*rows = append(*rows, row)
		outcome.Rows++
	}

	logrus.WithFields(logrus.Fields{
		"dominio":    spec.Domain,
		"linhas":     outcome.Rows,
		"descartada": outcome.Skipped,
	}).Info("Domínio processado")

	return outcome
}

// keepRow aplica os filtros client-side do pipeline (variante queda): site na
// lista permitida e canal contendo ao menos uma das palavras-chave
func (s *Service) keepRow(row domain.CanonicalRow) bool {
	if len(s.pipeline.SiteAllowList) > 0 {
		if !containsFoldSite(s.pipeline.SiteAllowList, row.Site) {
			return false
		}
	}

	if len(s.pipeline.ChannelKeywords) > 0 {
		if row.Channel == "" {
			return false
		}
		channel := strings.ToLower(row.Channel)
		matched := false
		for _, keyword := range s.pipeline.ChannelKeywords {
			if strings.Contains(channel, strings.ToLower(keyword)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// writeStamp grava o horário da execução na célula do dashboard; falha aqui
// não invalida a sincronização
func (s *Service) writeStamp(ctx context.Context, ref config.CellRef, now time.Time) {
	sheet, err := s.sheets.Open(ctx, ref.SpreadsheetID)
	if err == nil {
		var ws spreadsheet.Worksheet
		ws, err = sheet.Worksheet(ctx, ref.Worksheet)
		if err == nil {
			err = ws.UpdateCell(ctx, ref.Range, now.Format(stampLayout))
		}
	}

	if err != nil {
		logrus.WithError(err).WithField("celula", ref.Range).
			Warn("Erro ao gravar horário da execução no dashboard")
	}
}

func (s *Service) location() *time.Location {
	loc, err := time.LoadLocation(s.appConfig.Sync.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TriggerManualSync dispara uma sincronização em background, ignorando a
// solicitação se outra já estiver em andamento
func (s *Service) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("pipeline", s.pipeline.Name).
			Info("Sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("pipeline", s.pipeline.Name).
		Info("Iniciando sincronização manual")
	go func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			logrus.WithError(err).WithField("pipeline", s.pipeline.Name).
				Error("Erro na sincronização manual")
		}
	}()
}

// GetStatus retorna o status atual da sincronização
func (s *Service) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"pipeline":               s.pipeline.Name,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_total_rows"] = s.lastReport.TotalRows
		status["last_exchange_rate"] = s.lastReport.ExchangeRate
		status["last_rate_source"] = s.lastReport.RateSource
		status["last_failed_fetches"] = len(s.lastReport.FailedFetches())
		status["last_failed_syncs"] = len(s.lastReport.FailedSyncs())
	}

	return status
}

func containsFoldSite(set []string, value string) bool {
	for _, item := range set {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
