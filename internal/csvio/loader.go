package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

// Field counts of the record layouts.
const (
	courseFields         = 8
	arrangedCourseFields = 6
	eventFields          = 5
)

var errRecordShape = errors.New("unexpected number of fields")

// RecordFile is an activity record file, one activity per line.
// It is both a catalog source and a schedule writer.
type RecordFile struct {
	Path   string
	Comma  rune
	Logger *zap.Logger
}

// NewRecordFile returns a comma separated record file at path.
func NewRecordFile(path string, logger *zap.Logger) RecordFile {
	return RecordFile{Path: path, Comma: ',', Logger: logger}
}

// LoadCourses reads every valid course record in the file.
func (f RecordFile) LoadCourses() ([]*model.Course, error) {
	in, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return ReadCourseRecords(in, f.Comma, f.logger())
}

// LoadActivities reads every valid course and event record in the file.
func (f RecordFile) LoadActivities() ([]model.Activity, error) {
	in, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return ReadActivityRecords(in, f.Comma, f.logger())
}

func (f RecordFile) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

func newReader(in io.Reader, delim rune) *csv.Reader {
	r := csv.NewReader(in)
	r.Comma = delim
	// arranged courses have fewer columns
	r.FieldsPerRecord = -1
	// titles and details may hold bare quotes
	r.LazyQuotes = true
	return r
}

// ReadCourseRecords parses course records. Malformed lines and repeats of
// an already read name/section are logged and skipped.
func ReadCourseRecords(in io.Reader, delim rune, logger *zap.Logger) ([]*model.Course, error) {
	courses := []*model.Course{}
	err := eachRecord(in, delim, logger, func(line int, fields []string) error {
		c, err := ParseCourse(fields)
		if err != nil {
			return err
		}
		for _, existing := range courses {
			if existing.Name() == c.Name() && existing.Section() == c.Section() {
				return fmt.Errorf("course %s-%s already read", c.Name(), c.Section())
			}
		}
		courses = append(courses, c)
		return nil
	})
	return courses, err
}

// ReadActivityRecords parses a mixed file of course and event records, as
// written by WriteActivityRecords. Event records have five fields.
func ReadActivityRecords(in io.Reader, delim rune, logger *zap.Logger) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := eachRecord(in, delim, logger, func(line int, fields []string) error {
		var a model.Activity
		var err error
		if len(fields) == eventFields {
			a, err = ParseEvent(fields)
		} else {
			a, err = ParseCourse(fields)
		}
		if err != nil {
			return err
		}
		activities = append(activities, a)
		return nil
	})
	return activities, err
}

// eachRecord feeds every line to fn. Lines fn rejects are skipped.
func eachRecord(in io.Reader, delim rune, logger *zap.Logger, fn func(line int, fields []string) error) error {
	r := newReader(in, delim)
	for {
		fields, err := r.Read()
		if err == io.EOF {
			return nil
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.Warn("skipping malformed record", zap.Int("line", parseErr.Line), zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}
		line, _ := r.FieldPos(0)
		if err := fn(line, fields); err != nil {
			logger.Warn("skipping invalid record", zap.Int("line", line), zap.Error(err))
		}
	}
}

// ParseCourse builds a course from its 8 field (or 6 field arranged) record.
func ParseCourse(fields []string) (*model.Course, error) {
	switch len(fields) {
	case arrangedCourseFields, courseFields:
	default:
		return nil, fmt.Errorf("course record: %w: %d", errRecordShape, len(fields))
	}

	credits, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidCredits, err)
	}
	days := fields[5]
	if len(fields) == arrangedCourseFields {
		if days != model.Arranged {
			return nil, model.ErrInvalidMeeting
		}
		return model.NewArrangedCourse(fields[0], fields[1], fields[2], credits, fields[4])
	}
	if days == model.Arranged {
		return nil, model.ErrInvalidMeeting
	}
	start, end, err := parseTimes(fields[6], fields[7])
	if err != nil {
		return nil, err
	}
	return model.NewCourse(fields[0], fields[1], fields[2], credits, fields[4], days, start, end)
}

// ParseEvent builds an event from its 5 field record.
func ParseEvent(fields []string) (*model.Event, error) {
	if len(fields) != eventFields {
		return nil, fmt.Errorf("event record: %w: %d", errRecordShape, len(fields))
	}
	start, end, err := parseTimes(fields[2], fields[3])
	if err != nil {
		return nil, err
	}
	return model.NewEvent(fields[0], fields[1], start, end, fields[4])
}

func parseTimes(startSTR, endSTR string) (int, int, error) {
	start, err := strconv.Atoi(startSTR)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", model.ErrInvalidMeeting, err)
	}
	end, err := strconv.Atoi(endSTR)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", model.ErrInvalidMeeting, err)
	}
	return start, end, nil
}
