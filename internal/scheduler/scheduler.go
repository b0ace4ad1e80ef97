package scheduler

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

// DefaultTitle is the title of a new schedule.
const DefaultTitle = "My Schedule"

var (
	ErrSourceUnavailable   = errors.New("catalog source unavailable")
	ErrDuplicateEnrollment = errors.New("duplicate enrollment")
	ErrScheduleConflict    = errors.New("schedule conflict")
	ErrExportFailed        = errors.New("schedule export failed")
	ErrNotInCatalog        = errors.New("course not in catalog")
)

// CatalogSource supplies the course catalog.
type CatalogSource interface {
	LoadCourses() ([]*model.Course, error)
}

// ScheduleWriter receives the schedule on export.
type ScheduleWriter interface {
	WriteActivities(activities []model.Activity) error
}

// Scheduler holds a read-only course catalog and a student's schedule of
// courses and events. It is safe for concurrent use.
type Scheduler struct {
	mu       sync.RWMutex
	catalog  []*model.Course
	schedule []model.Activity
	title    string
	logger   *zap.Logger
}

// New loads the catalog from src. The schedule starts empty.
func New(src CatalogSource, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	courses, err := src.LoadCourses()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	logger.Info("catalog loaded", zap.Int("courses", len(courses)))
	return &Scheduler{
		catalog: courses,
		title:   DefaultTitle,
		logger:  logger,
	}, nil
}

// Catalog returns the catalog courses in load order.
func (s *Scheduler) Catalog() []*model.Course {
	// catalog is never written after New
	out := make([]*model.Course, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Schedule returns the scheduled activities in enrollment order.
func (s *Scheduler) Schedule() []model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Activity, len(s.schedule))
	copy(out, s.schedule)
	return out
}

func (s *Scheduler) CatalogRows() []model.ShortRow {
	return model.ShortRows(s.catalog)
}

func (s *Scheduler) ScheduledRows() []model.ShortRow {
	return model.ShortRows(s.Schedule())
}

func (s *Scheduler) FullScheduledRows() []model.LongRow {
	return model.LongRows(s.Schedule())
}

// FindInCatalog returns the first catalog course with the given name and section.
func (s *Scheduler) FindInCatalog(name, section string) (*model.Course, bool) {
	return findInCatalog(s.catalog, name, section)
}

// AddCourse enrolls the catalog course name/section. It returns false with a
// nil error when the catalog has no such course.
func (s *Scheduler) AddCourse(name, section string) (bool, error) {
	c, ok := s.FindInCatalog(name, section)
	if !ok {
		s.logger.Debug("course not in catalog", zap.String("name", name), zap.String("section", section))
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enroll(c); err != nil {
		return false, err
	}
	return true, nil
}

// AddEvent builds an event from the given fields and adds it to the schedule.
func (s *Scheduler) AddEvent(title, days string, start, end int, details string) (*model.Event, error) {
	e, err := model.NewEvent(title, days, start, end, details)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enroll(e); err != nil {
		return nil, err
	}
	return e, nil
}

// enroll appends a after checking it against the whole schedule.
// Callers hold the write lock.
func (s *Scheduler) enroll(a model.Activity) error {
	if err := scanSchedule(s.schedule, a); err != nil {
		s.logger.Debug("enrollment rejected", zap.String("activity", a.Title()), zap.Error(err))
		return err
	}
	s.schedule = append(s.schedule, a)
	s.logger.Debug("enrolled", zap.String("activity", a.Title()), zap.Int("scheduled", len(s.schedule)))
	return nil
}

// RestoreSchedule replaces the schedule with activities, checking each one
// against those before it. Courses are replaced by their catalog entry and
// must exist there. On error the current schedule is kept.
func (s *Scheduler) RestoreSchedule(activities []model.Activity) error {
	restored := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if c, ok := a.(*model.Course); ok {
			entry, found := findInCatalog(s.catalog, c.Name(), c.Section())
			if !found {
				return fmt.Errorf("%s-%s: %w", c.Name(), c.Section(), ErrNotInCatalog)
			}
			a = entry
		}
		if err := scanSchedule(restored, a); err != nil {
			return err
		}
		restored = append(restored, a)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = restored
	s.logger.Info("schedule restored", zap.Int("scheduled", len(restored)))
	return nil
}

// RemoveAt drops the activity at idx. It reports false when idx is out of range.
func (s *Scheduler) RemoveAt(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.schedule) {
		return false
	}
	s.schedule = append(s.schedule[:idx:idx], s.schedule[idx+1:]...)
	return true
}

// RemoveCourse drops the scheduled course with the given name and section.
func (s *Scheduler) RemoveCourse(name, section string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.schedule {
		if c, ok := a.(*model.Course); ok && c.Name() == name && c.Section() == section {
			s.schedule = append(s.schedule[:i:i], s.schedule[i+1:]...)
			return true
		}
	}
	return false
}

// Reset empties the schedule. The catalog and title are kept.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = nil
	s.logger.Info("schedule reset")
}

func (s *Scheduler) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

func (s *Scheduler) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// Credits sums the credits of the scheduled courses.
func (s *Scheduler) Credits() int {
	total := 0
	for _, a := range s.Schedule() {
		if c, ok := a.(*model.Course); ok {
			total += c.Credits()
		}
	}
	return total
}

// ExportSchedule hands the current schedule to w.
func (s *Scheduler) ExportSchedule(w ScheduleWriter) error {
	if err := w.WriteActivities(s.Schedule()); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
