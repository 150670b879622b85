package spreadsheet

import (
	"context"

	"github.com/pkg/errors"
)

// ErrWorksheetNotFound indica que a aba pedida não existe na planilha
var ErrWorksheetNotFound = errors.New("worksheet não encontrada")

// ValueInput controla como a API interpreta os valores escritos
type ValueInput string

const (
	// ValueInputRaw grava os valores como estão, sem interpretação
	ValueInputRaw ValueInput = "RAW"
	// ValueInputUserEntered interpreta os valores como se digitados na
	// planilha: strings de data e número viram células tipadas
	ValueInputUserEntered ValueInput = "USER_ENTERED"
)

// Service abre planilhas por identificador
type Service interface {
	Open(ctx context.Context, spreadsheetID string) (Spreadsheet, error)
}

// Spreadsheet representa uma planilha remota com múltiplas abas
type Spreadsheet interface {
	// Worksheet localiza uma aba pelo título; retorna ErrWorksheetNotFound
	// quando ela não existe
	Worksheet(ctx context.Context, title string) (Worksheet, error)
	AddWorksheet(ctx context.Context, title string, rows, cols int) (Worksheet, error)
	// FormatDateColumn aplica o formato de data à coluna A, pulando o cabeçalho
	FormatDateColumn(ctx context.Context, title, pattern string) error
}

// Worksheet representa uma aba de planilha
type Worksheet interface {
	Title() string
	RowCount() int
	Clear(ctx context.Context) error
	AddRows(ctx context.Context, count int) error
	Update(ctx context.Context, a1Range string, values [][]interface{}, input ValueInput) error
	Get(ctx context.Context, a1Range string) ([][]string, error)
	UpdateCell(ctx context.Context, a1 string, value string) error
}
