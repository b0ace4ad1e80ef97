package model

import "strings"

// Activity is anything that can be placed on a schedule. The set of
// implementations is closed: *Course and *Event.
type Activity interface {
	Title() string
	MeetingTime() MeetingTime
	// IsDuplicate reports whether other is the same logical entity.
	IsDuplicate(other Activity) bool
	ShortDisplay() ShortRow
	LongDisplay() LongRow
	// String returns the comma separated record form.
	String() string

	activity()
}

// CheckConflict returns ErrConflict when a and b meet on a shared day at
// overlapping times. Arranged activities never conflict.
func CheckConflict(a, b Activity) error {
	if a.MeetingTime().Overlaps(b.MeetingTime()) {
		return ErrConflict
	}
	return nil
}

// base holds the fields every activity has.
type base struct {
	title   string
	meeting MeetingTime
}

func newBase(title, days string, start, end int, alphabet Alphabet) (base, error) {
	if title == "" {
		return base{}, ErrInvalidTitle
	}
	meeting, err := NewMeetingTime(days, start, end, alphabet)
	if err != nil {
		return base{}, err
	}
	return base{title: title, meeting: meeting}, nil
}

func (b *base) Title() string { return b.title }

func (b *base) MeetingTime() MeetingTime { return b.meeting }

// MeetingString is the human readable meeting time.
func (b *base) MeetingString() string { return b.meeting.String() }

func (b *base) activity() {}

func joinRecord(fields ...string) string {
	return strings.Join(fields, ",")
}
