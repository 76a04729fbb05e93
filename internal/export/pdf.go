package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMaxRows    = 20
	pdfMaxCellLen = 15
)

// PDF renders a one-page A4 landscape summary of the table. Columns share the
// page width equally and long cells are truncated; the output is a glanceable
// overview, not a full data dump (that is what CSV and XLSX are for).
func PDF(t Table) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20 // total margins = 20mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, t.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	if t.Range != nil {
		rangeLine := fmt.Sprintf("Date range: %s to %s",
			t.Range.From.Format("2006-01-02"), t.Range.To.Format("2006-01-02"))
		pdf.CellFormat(contentW, 5, rangeLine, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	colW := contentW / float64(len(t.Columns))

	// ── Column headers ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range t.Columns {
		pdf.CellFormat(colW, 7, truncate(col, pdfMaxCellLen), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	shown := t.Rows
	if len(shown) > pdfMaxRows {
		shown = shown[:pdfMaxRows]
	}
	for _, row := range shown {
		for _, v := range row {
			pdf.CellFormat(colW, 6, truncate(v.String(), pdfMaxCellLen), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(t.Rows) > pdfMaxRows {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentW, 5,
			fmt.Sprintf("... and %d more items", len(t.Rows)-pdfMaxRows), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate counts runes, not bytes. Money cells start with the multi-byte
// peso sign, so a byte slice could cut mid-sequence and emit garbage.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
