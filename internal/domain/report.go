package domain

import "time"

// FetchOutcome é o resultado tipado da busca de um domínio
type FetchOutcome struct {
	Domain  string
	Rows    int
	Skipped int
	Err     error
}

// SyncOutcome é o resultado tipado da sincronização de um destino
type SyncOutcome struct {
	SpreadsheetID string
	Rows          int
	Chunks        int
	Err           error
	// FormatErr registra falha apenas de formatação; os dados já foram
	// escritos com sucesso quando somente este campo está preenchido
	FormatErr error
}

// Success indica se os dados do destino foram gravados
func (o SyncOutcome) Success() bool {
	return o.Err == nil
}

// RunReport agrega os resultados de uma execução completa do pipeline
type RunReport struct {
	Pipeline     string
	ExchangeRate float64
	RateSource   string
	StartDate    string
	EndDate      string
	Fetches      []FetchOutcome
	Syncs        []SyncOutcome
	TotalRows    int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Duration retorna o tempo total da execução
func (r RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// FailedFetches retorna os domínios cuja busca falhou
func (r RunReport) FailedFetches() []FetchOutcome {
	var failed []FetchOutcome
	for _, f := range r.Fetches {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// FailedSyncs retorna os destinos cuja gravação falhou
func (r RunReport) FailedSyncs() []SyncOutcome {
	var failed []SyncOutcome
	for _, s := range r.Syncs {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}
