package export

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// PDFBuilder assembles a landscape A4 report document. The zero value is
// not usable; call NewPDF.
type PDFBuilder struct {
	pdf *fpdf.Fpdf
}

func NewPDF(title, footer string) *PDFBuilder {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	if footer != "" {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-12)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(0, 8, footer, "", 0, "C", false, 0, "")
		})
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	return &PDFBuilder{pdf: pdf}
}

// Heading starts a new top-level section.
func (b *PDFBuilder) Heading(text string) {
	b.pdf.SetFont("Helvetica", "B", 13)
	b.pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
}

// SubHeading labels a nested group, indented by level.
func (b *PDFBuilder) SubHeading(level int, text string) {
	b.pdf.SetFont("Helvetica", "B", 10)
	b.pdf.SetX(b.pdf.GetX() + float64(level)*4)
	b.pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

// Table renders a bordered table with a shaded header row. Widths are in
// millimeters and must match the header count.
func (b *PDFBuilder) Table(headers []string, widths []float64, rows [][]string) {
	b.pdf.SetFont("Helvetica", "B", 8)
	b.pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		b.pdf.CellFormat(widths[i], 6, header, "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(-1)

	b.pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		for i, value := range row {
			if i >= len(widths) {
				break
			}
			b.pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		b.pdf.Ln(-1)
	}
	b.pdf.Ln(2)
}

// TotalLine prints an emphasized summary row.
func (b *PDFBuilder) TotalLine(label string, shifts int, hours, cost float64) {
	b.pdf.SetFont("Helvetica", "B", 9)
	text := fmt.Sprintf("%s: %d shifts, %.2f hours, %.2f", label, shifts, hours, cost)
	b.pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
	b.pdf.Ln(1)
}

// Bytes closes the document and returns its contents.
func (b *PDFBuilder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
