package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXRenderer renders the recap as a single-sheet workbook, for sites that
// post-process the exports in spreadsheets.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (x *XLSXRenderer) Ext() string {
	return ".xlsx"
}

func (x *XLSXRenderer) Render(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{fmt.Sprintf("Monthly attendance recap - %s", r.Period())},
		{fmt.Sprintf("Employee: %s (login: %s)", r.DisplayName, r.Login)},
		{fmt.Sprintf("Generated: %s", r.GeneratedAt.UTC().Format("02/01/2006 15:04"))},
		{},
		{"Date", "Type"},
	}
	for _, e := range r.Entries {
		rows = append(rows, []interface{}{e.Day.Format("02/01/2006"), TypeLabel(e.Type)})
	}

	counts := r.CountByType()
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Summary"},
		[]interface{}{"Day", counts.Day},
		[]interface{}{"Night", counts.Night},
		[]interface{}{"Travel", counts.Travel},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx report for %s: %w", r.Login, err)
	}

	return buf.Bytes(), nil
}
