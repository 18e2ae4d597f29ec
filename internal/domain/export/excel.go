package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteExcel renders the dataset as a single-sheet workbook with a styled
// header row and auto-sized columns.
func WriteExcel(w io.Writer, d Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(d.Title)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range d.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(d.Title, cell, header)
		f.SetCellStyle(d.Title, cell, cell, headerStyle)
	}

	for r, row := range d.Rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(d.Title, cell, value)
		}
	}

	for i := range d.Header {
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(d.Title, name, name, columnWidth(d, i))
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func columnWidth(d Dataset, col int) float64 {
	width := len(d.Header[col])
	for _, row := range d.Rows {
		if col < len(row) && len(row[col]) > width {
			width = len(row[col])
		}
	}
	const padding = 3
	w := float64(width + padding)
	if w > 40 {
		w = 40
	}
	return w
}
