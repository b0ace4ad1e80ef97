package scheduler

import (
	"fmt"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

// findInCatalog returns the first course matching both name and section.
func findInCatalog(catalog []*model.Course, name, section string) (*model.Course, bool) {
	for _, c := range catalog {
		if c.Name() == name && c.Section() == section {
			return c, true
		}
	}
	return nil, false
}

// scanSchedule checks candidate against every scheduled activity, duplicate
// first and then conflict. It never modifies schedule.
func scanSchedule(schedule []model.Activity, candidate model.Activity) error {
	for _, existing := range schedule {
		if existing.IsDuplicate(candidate) {
			return duplicateError(candidate)
		}
		if err := model.CheckConflict(existing, candidate); err != nil {
			return fmt.Errorf("the %s cannot be added due to a conflict with %q: %w",
				kind(candidate), existing.Title(), ErrScheduleConflict)
		}
	}
	return nil
}

func duplicateError(a model.Activity) error {
	switch v := a.(type) {
	case *model.Course:
		return fmt.Errorf("you are already enrolled in %s: %w", v.Name(), ErrDuplicateEnrollment)
	default:
		return fmt.Errorf("you have already created an event called %s: %w", a.Title(), ErrDuplicateEnrollment)
	}
}

func kind(a model.Activity) string {
	if _, ok := a.(*model.Course); ok {
		return "course"
	}
	return "event"
}
