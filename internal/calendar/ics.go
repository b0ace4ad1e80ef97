// Package calendar exports a schedule as an iCalendar file with one weekly
// recurring VEVENT per timetabled activity.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

// localLayout is a floating date-time: no zone, read in the viewer's zone.
const localLayout = "20060102T150405"

var uidSpace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("wolfscheduler"))

var weekdays = map[model.Day]rrule.Weekday{
	model.Monday:    rrule.MO,
	model.Tuesday:   rrule.TU,
	model.Wednesday: rrule.WE,
	model.Thursday:  rrule.TH,
	model.Friday:    rrule.FR,
	model.Saturday:  rrule.SA,
	model.Sunday:    rrule.SU,
}

// Options place the weekly pattern on real dates.
type Options struct {
	// WeekOf is any day of the first week. The week starts on Monday.
	WeekOf    time.Time
	Weeks     int
	ProductID string
	// Stamp is written as DTSTAMP. Zero means now.
	Stamp time.Time
}

// Export writes the calendar for activities to out. Arranged activities
// have no time and are left out.
func Export(out io.Writer, title string, activities []model.Activity, opts Options) error {
	cal, err := Build(title, activities, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, cal.Serialize())
	return err
}

// ExportFile writes the calendar to path.
func ExportFile(path, title string, activities []model.Activity, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(f, title, activities, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Build assembles the calendar.
func Build(title string, activities []model.Activity, opts Options) (*ics.Calendar, error) {
	if opts.Weeks < 1 {
		return nil, errors.New("calendar needs at least one week")
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	monday := firstMonday(opts.WeekOf)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	if opts.ProductID != "" {
		cal.SetProductId(opts.ProductID)
	}
	cal.SetXWRCalName(title)

	for _, a := range activities {
		meeting := a.MeetingTime()
		if meeting.IsArranged() {
			continue
		}
		if err := addEvent(cal, a, meeting, monday, opts.Weeks, stamp); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Title(), err)
		}
	}
	return cal, nil
}

func addEvent(cal *ics.Calendar, a model.Activity, meeting model.MeetingTime, monday time.Time, weeks int, stamp time.Time) error {
	days := meeting.Days()
	byDay := make([]rrule.Weekday, 0, len(days))
	for i := 0; i < len(days); i++ {
		byDay = append(byDay, weekdays[model.Day(days[i])])
	}

	anchor := monday.Add(clock(meeting.Start()))
	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   anchor,
		Byweekday: byDay,
		Count:     weeks * len(byDay),
	}
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return err
	}
	first := rule.After(anchor, true)
	end := first.Add(clock(meeting.End()) - clock(meeting.Start()))

	event := cal.AddEvent(uuid.NewSHA1(uidSpace, []byte(a.String())).String())
	event.SetDtStampTime(stamp)
	event.SetProperty(ics.ComponentPropertyDtStart, first.Format(localLayout))
	event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(localLayout))
	event.AddRrule(opt.RRuleString())
	event.SetSummary(summary(a))
	if d := description(a); d != "" {
		event.SetDescription(d)
	}
	return nil
}

func summary(a model.Activity) string {
	if c, ok := a.(*model.Course); ok {
		return c.Name() + " " + c.Title()
	}
	return a.Title()
}

func description(a model.Activity) string {
	switch v := a.(type) {
	case *model.Course:
		return fmt.Sprintf("Section %s, %d credits, instructor %s", v.Section(), v.Credits(), v.InstructorID())
	case *model.Event:
		return v.Details()
	}
	return ""
}

// clock converts an hhmm time to an offset from midnight.
func clock(hhmm int) time.Duration {
	return time.Duration(hhmm/100)*time.Hour + time.Duration(hhmm%100)*time.Minute
}

func firstMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
