package model

import (
	"fmt"
	"strings"
)

// Arranged is the meeting-days value of an activity with no fixed time.
const Arranged = "A"

const (
	upperHour   = 24
	upperMinute = 60
)

// Day is a single meeting-day letter.
type Day byte

const (
	Monday    Day = 'M'
	Tuesday   Day = 'T'
	Wednesday Day = 'W'
	Thursday  Day = 'H'
	Friday    Day = 'F'
	Saturday  Day = 'S'
	Sunday    Day = 'U'
)

var dayBits = map[Day]DaySet{
	Monday:    1 << 0,
	Tuesday:   1 << 1,
	Wednesday: 1 << 2,
	Thursday:  1 << 3,
	Friday:    1 << 4,
	Saturday:  1 << 5,
	Sunday:    1 << 6,
}

// DaySet is a set of meeting days.
type DaySet uint8

// Has reports whether d is in the set.
func (s DaySet) Has(d Day) bool {
	bit, ok := dayBits[d]
	return ok && s&bit != 0
}

// Intersects reports whether both sets share at least one day.
func (s DaySet) Intersects(o DaySet) bool {
	return s&o != 0
}

func (s DaySet) with(d Day) DaySet {
	return s | dayBits[d]
}

// Alphabet lists the meeting days an activity variant accepts.
type Alphabet struct {
	days          DaySet
	allowArranged bool
}

var (
	// WeekdayAlphabet is used by courses: M T W H F, or arranged.
	WeekdayAlphabet = Alphabet{
		days:          DaySet(0).with(Monday).with(Tuesday).with(Wednesday).with(Thursday).with(Friday),
		allowArranged: true,
	}
	// WeekAlphabet is used by events: the weekdays plus S and U.
	WeekAlphabet = Alphabet{
		days: WeekdayAlphabet.days.with(Saturday).with(Sunday),
	}
)

// MeetingTime is a validated weekly meeting pattern.
// The zero value is not valid; use NewMeetingTime.
type MeetingTime struct {
	days     string
	set      DaySet
	start    int
	end      int
	arranged bool
}

// NewMeetingTime validates days and times against the alphabet. Nothing is
// returned but the error when any part is invalid.
func NewMeetingTime(days string, start, end int, alphabet Alphabet) (MeetingTime, error) {
	if days == "" {
		return MeetingTime{}, ErrInvalidMeeting
	}
	if days == Arranged {
		if !alphabet.allowArranged || start != 0 || end != 0 {
			return MeetingTime{}, ErrInvalidMeeting
		}
		return MeetingTime{days: Arranged, arranged: true}, nil
	}

	var set DaySet
	for i := 0; i < len(days); i++ {
		d := Day(days[i])
		if !alphabet.days.Has(d) || set.Has(d) {
			return MeetingTime{}, ErrInvalidMeeting
		}
		set = set.with(d)
	}

	if !validClock(start) || !validClock(end) || start > end {
		return MeetingTime{}, ErrInvalidMeeting
	}

	return MeetingTime{days: days, set: set, start: start, end: end}, nil
}

func validClock(t int) bool {
	hour, minute := t/100, t%100
	return t >= 0 && hour < upperHour && minute < upperMinute
}

// Days returns the meeting days as given, or "A" when arranged.
func (m MeetingTime) Days() string { return m.days }

// DaySet returns the meeting days as a set. Arranged meetings have an empty set.
func (m MeetingTime) DaySet() DaySet { return m.set }

func (m MeetingTime) Start() int { return m.start }

func (m MeetingTime) End() int { return m.end }

func (m MeetingTime) IsArranged() bool { return m.arranged }

// Overlaps reports whether both meetings share a day and their closed time
// ranges intersect. Ranges that only touch at an endpoint overlap.
func (m MeetingTime) Overlaps(o MeetingTime) bool {
	if m.arranged || o.arranged {
		return false
	}
	if !m.set.Intersects(o.set) {
		return false
	}
	return m.start <= o.end && o.start <= m.end
}

// String renders the meeting as e.g. "MW 1:30 PM-2:45 PM", or "Arranged".
func (m MeetingTime) String() string {
	if m.arranged {
		return "Arranged"
	}
	var b strings.Builder
	b.WriteString(m.days)
	b.WriteByte(' ')
	b.WriteString(clockString(m.start))
	b.WriteByte('-')
	b.WriteString(clockString(m.end))
	return b.String()
}

func clockString(t int) string {
	hour, minute := t/100, t%100
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	} else if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}
