package syncing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
	"github.com/jnmidia/gam-sheets-sync/internal/usecases/routing"
)

// FanOut sincroniza cada partição em seu destino usando no máximo maxWorkers
// workers simultâneos. Cada destino pertence a exatamente um worker, do open
// ao format; a falha de um destino é registrada no resultado e não cancela os
// demais.
func (s *Synchronizer) FanOut(ctx context.Context, partitions []routing.Partition, maxWorkers int) []domain.SyncOutcome {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	semaphore := make(chan struct{}, maxWorkers)
	results := make(chan domain.SyncOutcome, len(partitions))
	var wg sync.WaitGroup

	for _, partition := range partitions {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(p routing.Partition) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"spreadsheet_id": p.Destination.SpreadsheetID,
				"rows":           len(p.Rows),
			}).Info("Sincronizando destino")

			results <- s.Sync(ctx, p.Destination, p.Rows)
		}(partition)
	}

	wg.Wait()
	close(results)

	outcomes := make([]domain.SyncOutcome, 0, len(partitions))
	for outcome := range results {
		if outcome.Err != nil {
			logrus.WithError(outcome.Err).
				WithField("spreadsheet_id", outcome.SpreadsheetID).
				Error("Erro ao sincronizar destino")
		} else {
			logrus.WithFields(logrus.Fields{
				"spreadsheet_id": outcome.SpreadsheetID,
				"rows":           outcome.Rows,
				"chunks":         outcome.Chunks,
			}).Info("Destino sincronizado com sucesso")
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
