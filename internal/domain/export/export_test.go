package export

import (
	"bytes"
	"strings"
	"testing"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:  "Shift Roster",
		Name:   "shift-roster",
		Header: []string{"date", "staff", "total_pay"},
		Rows: [][]string{
			{"2025-08-04", "Angela", "$336.00"},
			{"2025-08-04", "Rose, Mary", "$460.00"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleDataset()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "date,staff,total_pay" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[2] != `2025-08-04,"Rose, Mary",$460.00` {
		t.Fatalf("comma in field not quoted: %q", lines[2])
	}
}

func TestWriteExcelProducesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, sampleDataset()); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatalf("expected zip signature, got %q", buf.Bytes()[:4])
	}
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleDataset()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF signature, got %q", buf.Bytes()[:4])
	}
}

func TestColumnWidthCapped(t *testing.T) {
	d := sampleDataset()
	d.Rows = append(d.Rows, []string{strings.Repeat("x", 100), "a", "b"})
	if got := columnWidth(d, 0); got != 40 {
		t.Fatalf("expected width capped at 40, got %v", got)
	}
}
