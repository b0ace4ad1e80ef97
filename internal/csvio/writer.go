package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

// WriteActivities writes the activities to the record file, replacing it.
func (f RecordFile) WriteActivities(activities []model.Activity) error {
	out, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	if err := WriteActivityRecords(out, f.Comma, activities); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteActivityRecords writes one record per activity in the layout read by
// ReadActivityRecords.
func WriteActivityRecords(out io.Writer, delim rune, activities []model.Activity) error {
	writer := csv.NewWriter(out)
	writer.Comma = delim
	safe := gocsv.NewSafeCSVWriter(writer)
	for _, a := range activities {
		if err := safe.Write(recordFields(a)); err != nil {
			return err
		}
	}
	safe.Flush()
	return safe.Error()
}

func recordFields(a model.Activity) []string {
	// String is the canonical comma form; split it back into columns
	// so titles holding the delimiter are quoted by the csv writer.
	switch v := a.(type) {
	case *model.Course:
		fields := []string{v.Name(), v.Title(), v.Section(), fmt.Sprint(v.Credits()), v.InstructorID(), v.MeetingTime().Days()}
		if v.MeetingTime().IsArranged() {
			return fields
		}
		return append(fields, fmt.Sprint(v.MeetingTime().Start()), fmt.Sprint(v.MeetingTime().End()))
	case *model.Event:
		return []string{v.Title(), v.MeetingTime().Days(), fmt.Sprint(v.MeetingTime().Start()), fmt.Sprint(v.MeetingTime().End()), v.Details()}
	default:
		return strings.Split(a.String(), ",")
	}
}

// UseReportDelimiter sets the delimiter of the report writers.
func UseReportDelimiter(delim rune) {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = delim
		return gocsv.NewSafeCSVWriter(writer)
	})
}

// ExportReport writes the full schedule rows, with a header, to path.
func ExportReport(rows []model.LongRow, path string) (string, error) {
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return "", err
	}
	return path, nil
}

// ExportReportString formats the full schedule rows as csv with a header.
func ExportReportString(rows []model.LongRow) (string, error) {
	return gocsv.MarshalString(&rows)
}

// ExportCatalogString formats catalog listing rows as csv with a header.
func ExportCatalogString(rows []model.ShortRow) (string, error) {
	return gocsv.MarshalString(&rows)
}

// PrintTable prints rows under header with padded columns.
func PrintTable(out io.Writer, title string, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, f := range r {
			if i < len(widths) && len(f) > widths[i] {
				widths[i] = len(f)
			}
		}
	}

	if title != "" {
		total := len(widths) + 1
		for _, w := range widths {
			total += w + 2
		}
		pad := (total - len(title)) / 2
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(out, "%s %s %s\n", strings.Repeat("-", pad), title, strings.Repeat("-", pad))
	}
	printRow(out, widths, "#", header)
	for i, r := range rows {
		printRow(out, widths, fmt.Sprint(i), r)
	}
	fmt.Fprintf(out, "Printed rows: %d\n", len(rows))
}

func printRow(out io.Writer, widths []int, index string, fields []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-3s", index)
	for i, f := range fields {
		fmt.Fprintf(&b, " %-*s ", widths[i], f)
	}
	fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
}
