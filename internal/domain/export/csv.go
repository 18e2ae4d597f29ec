package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV streams the dataset as RFC 4180 CSV with a header row.
func WriteCSV(w io.Writer, d Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
