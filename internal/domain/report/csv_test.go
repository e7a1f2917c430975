package report

import (
	"strings"
	"testing"
)

func TestWriteCSVHeaderAndQuoting(t *testing.T) {
	rows := []Row{
		{Date: "2024-03-01", Morning: "Ana (u01)", Afternoon: "-", Night: "Ana (u01), Bruno (u02)", FullDay: "-"},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, rows, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "Date,Morning (08:00-13:00),Afternoon (13:01-20:00),Night (20:01-07:59),Full day" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != `2024-03-01,"Ana (u01)","","Ana (u01), Bruno (u02)",""` {
		t.Fatalf("unexpected data row: %q", lines[1])
	}
	if lines[2] != "" {
		t.Fatalf("expected trailing newline, got %q", lines[2])
	}
}

func TestWriteCSVBracketsPercentages(t *testing.T) {
	rows := []Row{
		{Date: "2024-03-05", Morning: "Ana (u01) 20.0%", Afternoon: "-", Night: "-", FullDay: "-"},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, rows, true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[1] != `2024-03-05,"Ana (u01) [20.0%]","","",""` {
		t.Fatalf("unexpected data row: %q", lines[1])
	}
}

func TestWriteCSVLeavesPercentagesAloneWithoutStats(t *testing.T) {
	// Without stats no percentage is embedded, so the rewrite must not run
	// and a user name that happens to match the pattern stays untouched.
	rows := []Row{
		{Date: "2024-03-05", Morning: "Ana 99.9% (u01)", Afternoon: "-", Night: "-", FullDay: "-"},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, rows, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(buf.String(), `"Ana 99.9% (u01)"`) {
		t.Fatalf("cell was rewritten: %q", buf.String())
	}
}

func TestFilename(t *testing.T) {
	got := Filename("2024-03-01", "2024-03-05")
	if got != "report_troupe_2024-03-01_2024-03-05.csv" {
		t.Fatalf("unexpected filename: %q", got)
	}
}
