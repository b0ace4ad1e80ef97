package scheduler

import (
	"fmt"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

// Validate checks a list of activities for duplicates and conflicts between
// any two of them. Returns false and a report for invalid lists.
func Validate(activities []model.Activity) (bool, string) {
	var message string
	var hasDuplicate, hasConflict bool

	for i, a1 := range activities {
		for _, a2 := range activities[i+1:] {
			if a1.IsDuplicate(a2) {
				hasDuplicate = true
				message += fmt.Sprintf("- Duplicate: %s | %s\n", describe(a1), describe(a2))
				continue
			}
			if model.CheckConflict(a1, a2) != nil {
				hasConflict = true
				message += fmt.Sprintf("- Conflict: %s | %s\n", describe(a1), describe(a2))
			}
		}
	}

	if hasConflict {
		message = "[FAIL]: Conflict check.\n" + message
	} else {
		message = "[  OK]: Conflict check.\n" + message
	}
	if hasDuplicate {
		message = "[FAIL]: Duplicate check.\n" + message
	} else {
		message = "[  OK]: Duplicate check.\n" + message
	}

	return !hasDuplicate && !hasConflict, message
}

func describe(a model.Activity) string {
	if c, ok := a.(*model.Course); ok {
		return fmt.Sprintf("%s-%s %s", c.Name(), c.Section(), c.MeetingString())
	}
	return fmt.Sprintf("%s %s", a.Title(), a.MeetingTime())
}
