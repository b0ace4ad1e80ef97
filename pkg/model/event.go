package model

import "strconv"

// Event is a student created activity such as a study group or a job shift.
type Event struct {
	base
	details string
}

// NewEvent builds an event from the record fields
// title,meetingDays,startTime,endTime,details. Details may be empty.
func NewEvent(title, days string, start, end int, details string) (*Event, error) {
	b, err := newBase(title, days, start, end, WeekAlphabet)
	if err != nil {
		return nil, err
	}
	return &Event{base: b, details: details}, nil
}

func (e *Event) Details() string { return e.details }

// WithMeetingTime returns a copy of the event meeting at the given time.
func (e *Event) WithMeetingTime(days string, start, end int) (*Event, error) {
	meeting, err := NewMeetingTime(days, start, end, WeekAlphabet)
	if err != nil {
		return nil, err
	}
	cp := *e
	cp.meeting = meeting
	return &cp, nil
}

// WithDetails returns a copy of the event with new details.
func (e *Event) WithDetails(details string) *Event {
	cp := *e
	cp.details = details
	return &cp
}

// IsDuplicate matches events by title.
func (e *Event) IsDuplicate(other Activity) bool {
	o, ok := other.(*Event)
	return ok && e.title == o.title
}

func (e *Event) ShortDisplay() ShortRow {
	return ShortRow{Title: e.title, Meeting: e.MeetingString()}
}

func (e *Event) LongDisplay() LongRow {
	return LongRow{Title: e.title, Meeting: e.MeetingString(), Details: e.details}
}

func (e *Event) String() string {
	return joinRecord(e.title, e.meeting.Days(), strconv.Itoa(e.meeting.Start()), strconv.Itoa(e.meeting.End()), e.details)
}
