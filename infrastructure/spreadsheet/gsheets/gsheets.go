package gsheets

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet"
)

// Service implementa spreadsheet.Service sobre a API v4 do Google Sheets
type Service struct {
	svc *sheets.Service
}

// NewService autentica com a service account e cria o cliente do Sheets
func NewService(ctx context.Context, credentialsJSON string) (*Service, error) {
	jwt, err := google.JWTConfigFromJSON([]byte(credentialsJSON), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar credenciais do GCP")
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Sheets")
	}

	return &Service{svc: svc}, nil
}

func (s *Service) Open(ctx context.Context, spreadsheetID string) (spreadsheet.Spreadsheet, error) {
	meta, err := s.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", spreadsheetID)
	}

	return &remoteSpreadsheet{svc: s.svc, id: spreadsheetID, meta: meta}, nil
}

type remoteSpreadsheet struct {
	svc  *sheets.Service
	id   string
	meta *sheets.Spreadsheet
}

func (s *remoteSpreadsheet) properties(title string) *sheets.SheetProperties {
	for _, sh := range s.meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return sh.Properties
		}
	}
	return nil
}

func (s *remoteSpreadsheet) Worksheet(_ context.Context, title string) (spreadsheet.Worksheet, error) {
	props := s.properties(title)
	if props == nil {
		return nil, spreadsheet.ErrWorksheetNotFound
	}

	rowCount := 0
	if props.GridProperties != nil {
		rowCount = int(props.GridProperties.RowCount)
	}

	return &remoteWorksheet{
		svc:           s.svc,
		spreadsheetID: s.id,
		sheetID:       props.SheetId,
		title:         title,
		rowCount:      rowCount,
	}, nil
}

func (s *remoteSpreadsheet) AddWorksheet(ctx context.Context, title string, rows, cols int) (spreadsheet.Worksheet, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    int64(rows),
						ColumnCount: int64(cols),
					},
				},
			},
		}},
	}

	resp, err := s.svc.Spreadsheets.BatchUpdate(s.id, req).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar aba %q", title)
	}

	props := resp.Replies[0].AddSheet.Properties
	s.meta.Sheets = append(s.meta.Sheets, &sheets.Sheet{Properties: props})

	return &remoteWorksheet{
		svc:           s.svc,
		spreadsheetID: s.id,
		sheetID:       props.SheetId,
		title:         title,
		rowCount:      rows,
	}, nil
}

func (s *remoteSpreadsheet) FormatDateColumn(ctx context.Context, title, pattern string) error {
	props := s.properties(title)
	if props == nil {
		return spreadsheet.ErrWorksheetNotFound
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          props.SheetId,
					StartRowIndex:    1, // pula o cabeçalho
					StartColumnIndex: 0,
					EndColumnIndex:   1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						NumberFormat: &sheets.NumberFormat{
							Type:    "DATE",
							Pattern: pattern,
						},
					},
				},
				Fields: "userEnteredFormat.numberFormat",
			},
		}},
	}

	_, err := s.svc.Spreadsheets.BatchUpdate(s.id, req).Context(ctx).Do()
	return errors.Wrapf(err, "erro ao formatar coluna de data da aba %q", title)
}

type remoteWorksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetID       int64
	title         string
	rowCount      int
}

func (w *remoteWorksheet) Title() string {
	return w.title
}

func (w *remoteWorksheet) RowCount() int {
	return w.rowCount
}

func (w *remoteWorksheet) rangeName(a1Range string) string {
	return fmt.Sprintf("'%s'!%s", w.title, a1Range)
}

func (w *remoteWorksheet) Clear(ctx context.Context) error {
	_, err := w.svc.Spreadsheets.Values.
		Clear(w.spreadsheetID, fmt.Sprintf("'%s'", w.title), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	return errors.Wrapf(err, "erro ao limpar aba %q", w.title)
}

func (w *remoteWorksheet) AddRows(ctx context.Context, count int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AppendDimension: &sheets.AppendDimensionRequest{
				SheetId:   w.sheetID,
				Dimension: "ROWS",
				Length:    int64(count),
			},
		}},
	}

	if _, err := w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return errors.Wrapf(err, "erro ao expandir capacidade da aba %q", w.title)
	}

	w.rowCount += count
	return nil
}

func (w *remoteWorksheet) Update(ctx context.Context, a1Range string, values [][]interface{}, input spreadsheet.ValueInput) error {
	vr := &sheets.ValueRange{Values: values}

	_, err := w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, w.rangeName(a1Range), vr).
		ValueInputOption(string(input)).
		Context(ctx).Do()
	return errors.Wrapf(err, "erro ao atualizar faixa %s da aba %q", a1Range, w.title)
}

func (w *remoteWorksheet) Get(ctx context.Context, a1Range string) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.
		Get(w.spreadsheetID, w.rangeName(a1Range)).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler faixa %s da aba %q", a1Range, w.title)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func (w *remoteWorksheet) UpdateCell(ctx context.Context, a1 string, value string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, w.rangeName(a1), vr).
		ValueInputOption(string(spreadsheet.ValueInputUserEntered)).
		Context(ctx).Do()
	return errors.Wrapf(err, "erro ao atualizar célula %s da aba %q", a1, w.title)
}
