package calendar

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

func activities(t *testing.T) []model.Activity {
	t.Helper()
	c216, err := model.NewCourse("CSC 216", "Software Development Fundamentals", "001", 3, "sesmith5", "TH", 1330, 1445)
	require.NoError(t, err)
	c230, err := model.NewArrangedCourse("CSC 230", "C and Software Tools", "001", 3, "dbsturgi")
	require.NoError(t, err)
	gym, err := model.NewEvent("Gym", "U", 900, 1000, "Legs")
	require.NoError(t, err)
	return []model.Activity{c216, c230, gym}
}

func options() Options {
	return Options{
		// a Wednesday; the first week starts Monday the 17th
		WeekOf:    time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC),
		Weeks:     15,
		ProductID: "-//WolfScheduler//EN",
		Stamp:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func parse(t *testing.T, data []byte) *ics.Calendar {
	t.Helper()
	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	return cal
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "Fall 2026", activities(t), options()))

	events := parse(t, buf.Bytes()).Events()
	require.Len(t, events, 2, "arranged course is left out")

	course := events[0]
	assert.Equal(t, "CSC 216 Software Development Fundamentals", course.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "20260818T133000", course.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20260818T144500", course.GetProperty(ics.ComponentPropertyDtEnd).Value)
	rule := course.GetProperty(ics.ComponentPropertyRrule).Value
	assert.Contains(t, rule, "FREQ=WEEKLY")
	assert.Contains(t, rule, "COUNT=30")
	assert.Contains(t, rule, "BYDAY=TU,TH")

	gym := events[1]
	assert.Equal(t, "Gym", gym.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "20260823T090000", gym.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "Legs", gym.GetProperty(ics.ComponentPropertyDescription).Value)
}

func TestExport_StableUIDs(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Export(&a, "Fall", activities(t), options()))
	require.NoError(t, Export(&b, "Fall", activities(t), options()))

	first := parse(t, a.Bytes()).Events()
	second := parse(t, b.Bytes()).Events()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Id(), second[i].Id())
	}
	assert.NotEqual(t, first[0].Id(), first[1].Id())
}

func TestExport_NoWeeks(t *testing.T) {
	opts := options()
	opts.Weeks = 0
	assert.Error(t, Export(&bytes.Buffer{}, "Fall", activities(t), opts))
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fall.ics")
	require.NoError(t, ExportFile(path, "Fall", activities(t), options()))
	assert.FileExists(t, path)
}

func TestFirstMonday(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), firstMonday(sunday))
}
