package exchanging

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet"
	"github.com/jnmidia/gam-sheets-sync/internal/config"
)

// Fontes possíveis da cotação reportadas no RunReport
const (
	SourceSpreadsheet = "planilha"
	SourceFallback    = "fallback"
)

// Resolver obtém a cotação USD→BRL de uma célula de planilha, uma única vez
// por execução
type Resolver struct {
	sheets   spreadsheet.Service
	fallback float64
}

func NewResolver(sheets spreadsheet.Service, fallback float64) *Resolver {
	return &Resolver{
		sheets:   sheets,
		fallback: fallback,
	}
}

// Resolve nunca retorna erro: qualquer falha de rede, aba ausente ou valor
// ilegível cai no fallback configurado, e a execução continua.
func (r *Resolver) Resolve(ctx context.Context, ref config.CellRef) (float64, string) {
	rate, err := r.lookup(ctx, ref)
	if err != nil {
		logrus.WithError(err).Warnf("Erro ao obter câmbio. Usando fallback: %v BRL", r.fallback)
		return r.fallback, SourceFallback
	}

	logrus.Infof("Taxa de câmbio obtida: 1 USD = %v BRL", rate)
	return rate, SourceSpreadsheet
}

func (r *Resolver) lookup(ctx context.Context, ref config.CellRef) (float64, error) {
	sheet, err := r.sheets.Open(ctx, ref.SpreadsheetID)
	if err != nil {
		return 0, err
	}

	ws, err := sheet.Worksheet(ctx, ref.Worksheet)
	if err != nil {
		return 0, err
	}

	values, err := ws.Get(ctx, ref.Range)
	if err != nil {
		return 0, err
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return 0, errors.Errorf("células %s estão vazias", ref.Range)
	}

	// Quando a faixa tem mais de uma célula, vale a última preenchida
	raw := values[0][len(values[0])-1]

	rate, err := parseRate(raw)
	if err != nil {
		return 0, err
	}

	if rate <= 0 {
		return 0, errors.Errorf("câmbio inválido: %v", rate)
	}

	return rate, nil
}

// parseRate aceita valores como "5,35", "R$ 5,35" ou "5.35"
func parseRate(raw string) (float64, error) {
	cleaned := strings.NewReplacer("R$", "", "$", "", " ", "", ",", ".").Replace(raw)

	rate, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao interpretar câmbio %q", raw)
	}

	return rate, nil
}
