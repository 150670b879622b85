package syncing

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet"
	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

// Capacidade inicial de uma aba recém-criada
const (
	defaultSheetRows = 30000
	defaultSheetCols = 20
)

const dateColumnPattern = "yyyy-MM-dd"

// Synchronizer grava o subconjunto de linhas de um destino na aba "BD - GAM",
// substituindo integralmente o conteúdo anterior a cada execução
type Synchronizer struct {
	sheets    spreadsheet.Service
	sheetName string
	chunkSize int
	variant   domain.SchemaVariant
}

func NewSynchronizer(sheets spreadsheet.Service, sheetName string, chunkSize int, variant domain.SchemaVariant) *Synchronizer {
	if chunkSize <= 0 {
		chunkSize = 10000
	}

	return &Synchronizer{
		sheets:    sheets,
		sheetName: sheetName,
		chunkSize: chunkSize,
		variant:   variant,
	}
}

// Sync executa a sobrescrita completa de um destino: limpa (ou cria) a aba,
// grava o cabeçalho e os dados em lotes de tamanho fixo, expandindo a
// capacidade de linhas quando necessário. Falha de formatação não invalida a
// gravação.
func (s *Synchronizer) Sync(ctx context.Context, dest domain.Destination, rows []domain.CanonicalRow) domain.SyncOutcome {
	outcome := domain.SyncOutcome{SpreadsheetID: dest.SpreadsheetID}

	sheet, err := s.sheets.Open(ctx, dest.SpreadsheetID)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	ws, err := s.prepareWorksheet(ctx, sheet)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	header := s.variant.Header()
	if err := ws.Update(ctx, "A1:J1", [][]interface{}{toInterfaces(header)}, s.valueInput()); err != nil {
		outcome.Err = errors.Wrap(err, "erro ao gravar cabeçalho")
		return outcome
	}

	for start := 0; start < len(rows); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := s.writeChunk(ctx, ws, rows[start:end], start); err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Chunks++
	}

	outcome.Rows = len(rows)

	// Somente o esquema padrão grava datas seriais na coluna A
	if s.variant == domain.SchemaDefault {
		if err := sheet.FormatDateColumn(ctx, s.sheetName, dateColumnPattern); err != nil {
			logrus.WithError(err).WithField("spreadsheet_id", dest.SpreadsheetID).
				Warn("Erro ao formatar a coluna A como data")
			outcome.FormatErr = err
		}
	}

	return outcome
}

// valueInput escolhe como a planilha interpreta as células gravadas: o
// esquema de queda grava data e hora como strings e depende da interpretação
// da planilha para virarem células tipadas; o esquema padrão grava seriais e
// números prontos
func (s *Synchronizer) valueInput() spreadsheet.ValueInput {
	if s.variant == domain.SchemaQueda {
		return spreadsheet.ValueInputUserEntered
	}
	return spreadsheet.ValueInputRaw
}

// prepareWorksheet localiza a aba de destino e limpa seu conteúdo, ou cria a
// aba quando ela ainda não existe
func (s *Synchronizer) prepareWorksheet(ctx context.Context, sheet spreadsheet.Spreadsheet) (spreadsheet.Worksheet, error) {
	ws, err := sheet.Worksheet(ctx, s.sheetName)
	if errors.Is(err, spreadsheet.ErrWorksheetNotFound) {
		return sheet.AddWorksheet(ctx, s.sheetName, defaultSheetRows, defaultSheetCols)
	}
	if err != nil {
		return nil, err
	}

	if err := ws.Clear(ctx); err != nil {
		return nil, err
	}

	return ws, nil
}

// writeChunk grava um lote de linhas a partir do offset dado (0-based em
// relação aos dados; a linha 1 da aba é o cabeçalho)
func (s *Synchronizer) writeChunk(ctx context.Context, ws spreadsheet.Worksheet, chunk []domain.CanonicalRow, offset int) error {
	startRow := offset + 2
	endRow := startRow + len(chunk) - 1

	if ws.RowCount() < endRow {
		if err := ws.AddRows(ctx, endRow-ws.RowCount()); err != nil {
			return err
		}
	}

	values := make([][]interface{}, 0, len(chunk))
	for _, row := range chunk {
		values = append(values, row.Values(s.variant))
	}

	rangeName := fmt.Sprintf("A%d:J%d", startRow, endRow)
	if err := ws.Update(ctx, rangeName, values, s.valueInput()); err != nil {
		return errors.Wrapf(err, "erro ao gravar linhas %d-%d", startRow, endRow)
	}

	logrus.WithFields(logrus.Fields{
		"range": rangeName,
		"rows":  len(chunk),
	}).Debug("Lote de linhas gravado")

	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
