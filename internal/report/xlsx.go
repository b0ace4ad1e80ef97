// Package report renders a schedule as an Excel workbook: a "Schedule"
// sheet with the full rows and a "Week" sheet with one column per day.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

const (
	ScheduleSheet = "Schedule"
	WeekSheet     = "Week"
)

var ErrWorkbook = errors.New("failed to generate workbook")

var dayColumns = []struct {
	day  model.Day
	name string
}{
	{model.Monday, "Monday"},
	{model.Tuesday, "Tuesday"},
	{model.Wednesday, "Wednesday"},
	{model.Thursday, "Thursday"},
	{model.Friday, "Friday"},
	{model.Saturday, "Saturday"},
	{model.Sunday, "Sunday"},
}

// WriteWorkbook writes the workbook for activities to out.
func WriteWorkbook(out io.Writer, title string, activities []model.Activity) error {
	f, err := build(title, activities)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	return nil
}

// SaveWorkbook writes the workbook to path.
func SaveWorkbook(path, title string, activities []model.Activity) error {
	f, err := build(title, activities)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	defer f.Close()

	return f.SaveAs(path)
}

func build(title string, activities []model.Activity) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(ScheduleSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	if _, err := f.NewSheet(WeekSheet); err != nil {
		f.Close()
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#CC0000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := scheduleSheet(f, title, headerStyle, model.LongRows(activities)); err != nil {
		f.Close()
		return nil, err
	}
	if err := weekSheet(f, headerStyle, activities); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func scheduleSheet(f *excelize.File, title string, style int, rows []model.LongRow) error {
	last := colName(len(model.LongHeader))
	f.SetCellValue(ScheduleSheet, "A1", title)
	if err := f.MergeCell(ScheduleSheet, "A1", last+"1"); err != nil {
		return err
	}
	f.SetCellStyle(ScheduleSheet, "A1", "A1", style)

	for i, h := range model.LongHeader {
		f.SetCellValue(ScheduleSheet, cell(colName(i+1), 2), h)
	}
	f.SetCellStyle(ScheduleSheet, "A2", last+"2", style)

	for r, row := range rows {
		for i, v := range row.Fields() {
			if v == "" {
				continue
			}
			f.SetCellValue(ScheduleSheet, cell(colName(i+1), r+3), v)
		}
	}

	f.SetColWidth(ScheduleSheet, "A", "B", 10)
	f.SetColWidth(ScheduleSheet, "C", "C", 36)
	f.SetColWidth(ScheduleSheet, "D", "E", 12)
	f.SetColWidth(ScheduleSheet, "F", last, 24)
	return nil
}

// weekSheet lists one activity per row with its time under each day it meets.
func weekSheet(f *excelize.File, style int, activities []model.Activity) error {
	f.SetCellValue(WeekSheet, "A1", "Activity")
	for i, d := range dayColumns {
		f.SetCellValue(WeekSheet, cell(colName(i+2), 1), d.name)
	}
	last := colName(len(dayColumns) + 1)
	if err := f.SetCellStyle(WeekSheet, "A1", last+"1", style); err != nil {
		return err
	}

	row := 2
	for _, a := range activities {
		meeting := a.MeetingTime()
		if meeting.IsArranged() {
			continue
		}
		f.SetCellValue(WeekSheet, cell("A", row), label(a))
		span := meeting.String()[len(meeting.Days())+1:]
		for i, d := range dayColumns {
			if meeting.DaySet().Has(d.day) {
				f.SetCellValue(WeekSheet, cell(colName(i+2), row), span)
			}
		}
		row++
	}

	f.SetColWidth(WeekSheet, "A", "A", 36)
	f.SetColWidth(WeekSheet, "B", last, 16)
	return nil
}

func label(a model.Activity) string {
	if c, ok := a.(*model.Course); ok {
		return c.Name() + "-" + c.Section()
	}
	return a.Title()
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
