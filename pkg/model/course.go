package model

import "strconv"

const (
	minNameLength  = 5
	maxNameLength  = 8
	minLetterCount = 1
	maxLetterCount = 4
	digitCount     = 3
	sectionLength  = 3
	minCredits     = 1
	maxCredits     = 5
)

// Course is a catalog offering. Courses are immutable once built, so the
// catalog and the schedule can share the same pointer.
type Course struct {
	base
	name         string
	section      string
	credits      int
	instructorID string
}

// NewCourse builds a timetabled course from the record fields
// name,title,section,credits,instructorId,meetingDays,startTime,endTime.
func NewCourse(name, title, section string, credits int, instructorID, days string, start, end int) (*Course, error) {
	b, err := newBase(title, days, start, end, WeekdayAlphabet)
	if err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSection(section); err != nil {
		return nil, err
	}
	if credits < minCredits || credits > maxCredits {
		return nil, ErrInvalidCredits
	}
	if instructorID == "" {
		return nil, ErrInvalidInstructor
	}
	return &Course{
		base:         b,
		name:         name,
		section:      section,
		credits:      credits,
		instructorID: instructorID,
	}, nil
}

// NewArrangedCourse builds a course with no fixed meeting time.
func NewArrangedCourse(name, title, section string, credits int, instructorID string) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, Arranged, 0, 0)
}

// validateName accepts 1-4 letters, a single space and exactly 3 digits.
func validateName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return ErrInvalidName
	}
	letters, digits := 0, 0
	spaceFound := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case !spaceFound && isLetter(c):
			letters++
		case !spaceFound && c == ' ':
			spaceFound = true
		case spaceFound && isDigit(c):
			digits++
		default:
			return ErrInvalidName
		}
	}
	if letters < minLetterCount || letters > maxLetterCount || digits != digitCount {
		return ErrInvalidName
	}
	return nil
}

func validateSection(section string) error {
	if len(section) != sectionLength {
		return ErrInvalidSection
	}
	for i := 0; i < len(section); i++ {
		if !isDigit(section[i]) {
			return ErrInvalidSection
		}
	}
	return nil
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (c *Course) Name() string { return c.name }

func (c *Course) Section() string { return c.section }

func (c *Course) Credits() int { return c.credits }

func (c *Course) InstructorID() string { return c.instructorID }

// WithMeetingTime returns a copy of the course meeting at the given time.
// The receiver is never modified.
func (c *Course) WithMeetingTime(days string, start, end int) (*Course, error) {
	meeting, err := NewMeetingTime(days, start, end, WeekdayAlphabet)
	if err != nil {
		return nil, err
	}
	cp := *c
	cp.meeting = meeting
	return &cp, nil
}

// IsDuplicate matches courses by name.
func (c *Course) IsDuplicate(other Activity) bool {
	o, ok := other.(*Course)
	return ok && c.name == o.name
}

func (c *Course) ShortDisplay() ShortRow {
	return ShortRow{
		Name:    c.name,
		Section: c.section,
		Title:   c.title,
		Meeting: c.MeetingString(),
	}
}

func (c *Course) LongDisplay() LongRow {
	return LongRow{
		Name:       c.name,
		Section:    c.section,
		Title:      c.title,
		Credits:    strconv.Itoa(c.credits),
		Instructor: c.instructorID,
		Meeting:    c.MeetingString(),
	}
}

// String returns the record form. Arranged courses drop the time columns.
func (c *Course) String() string {
	head := []string{c.name, c.title, c.section, strconv.Itoa(c.credits), c.instructorID, c.meeting.Days()}
	if c.meeting.IsArranged() {
		return joinRecord(head...)
	}
	return joinRecord(append(head, strconv.Itoa(c.meeting.Start()), strconv.Itoa(c.meeting.End()))...)
}
