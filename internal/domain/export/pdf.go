package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// pdfRowLimit caps the number of table rows rendered into a PDF. Larger
// ranges are served by the CSV and Excel formats.
const pdfRowLimit = 50

// WritePDF renders the dataset as a landscape A4 table with a title line.
func WritePDF(w io.Writer, d Dataset) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(d.Header))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(54, 96, 146)
	pdf.SetTextColor(255, 255, 255)
	for _, header := range d.Header {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	rows := d.Rows
	truncated := false
	if len(rows) > pdfRowLimit {
		rows = rows[:pdfRowLimit]
		truncated = true
	}
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if truncated {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.Cell(0, 6, fmt.Sprintf("Showing first %d of %d rows. Use the CSV or Excel export for the full dataset.", pdfRowLimit, len(d.Rows)))
	}

	return pdf.Output(w)
}
