package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders one A4 recap document per employee: a header block,
// a date/type table and the per-type count summary.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (p *PDFRenderer) Ext() string {
	return ".pdf"
}

func (p *PDFRenderer) Render(r Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// The PDF metadata embeds a creation date; pin it to the job timestamp so
	// re-rendering the same snapshot produces identical bytes.
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Monthly attendance recap - %s", r.Period()))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (login: %s)", r.DisplayName, r.Login))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", r.GeneratedAt.UTC().Format("02/01/2006 15:04")))
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(60, 8, "Date")
	pdf.Cell(60, 8, "Type")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	for _, e := range r.Entries {
		pdf.Cell(60, 7, e.Day.Format("02/01/2006"))
		pdf.Cell(60, 7, TypeLabel(e.Type))
		pdf.Ln(7)
	}

	// Summary
	counts := r.CountByType()
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range []struct {
		label string
		count int
	}{
		{"Day", counts.Day},
		{"Night", counts.Night},
		{"Travel", counts.Travel},
	} {
		pdf.Cell(60, 7, row.label)
		pdf.Cell(60, 7, fmt.Sprintf("%d", row.count))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf report for %s: %w", r.Login, err)
	}

	return buf.Bytes(), nil
}
