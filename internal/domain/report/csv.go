package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Column headers carry the slot time windows so the export is readable on
// its own.
var csvHeader = []string{
	"Date",
	"Morning (08:00-13:00)",
	"Afternoon (13:01-20:00)",
	"Night (20:01-07:59)",
	"Full day",
}

var percentPattern = regexp.MustCompile(` (\d+\.\d+%)`)

// WriteCSV renders rows as the export table: LF line endings, every slot cell
// quoted as a single field, empty cells exported as empty strings, and
// percentages wrapped in square brackets to mark them as metadata.
func WriteCSV(w io.Writer, rows []Row, includeStats bool) error {
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(csvHeader, ",")); err != nil {
		return err
	}

	for _, row := range rows {
		fields := []string{row.Date}
		for _, cell := range []string{row.Morning, row.Afternoon, row.Night, row.FullDay} {
			fields = append(fields, `"`+exportCell(cell, includeStats)+`"`)
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}

// Filename follows the report_<system>_<start>_<end>.csv download convention.
func Filename(start, end string) string {
	return fmt.Sprintf("report_troupe_%s_%s.csv", start, end)
}

func exportCell(content string, includeStats bool) string {
	if content == EmptyCell {
		return ""
	}
	if includeStats {
		return percentPattern.ReplaceAllString(content, " [$1]")
	}
	return content
}
