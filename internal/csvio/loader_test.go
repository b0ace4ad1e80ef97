package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rhyrak/wolfscheduler/pkg/model"
)

const validCourses = `CSC 116,Intro to Programming - Java,001,3,jdyoung2,MW,910,1100
CSC 116,Intro to Programming - Java,002,3,spbalik,MW,1120,1310
CSC 216,Software Development Fundamentals,001,3,sesmith5,TH,1330,1445
CSC 230,C and Software Tools,001,3,dbsturgi,A
CSC 316,Data Structures and Algorithms,001,3,jtking,MW,1530,1645
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCourses(t *testing.T) {
	courses, err := NewRecordFile(writeFile(t, validCourses), nil).LoadCourses()
	require.NoError(t, err)
	require.Len(t, courses, 5)

	assert.Equal(t, "CSC 116", courses[0].Name())
	assert.Equal(t, "002", courses[1].Section())
	assert.Equal(t, "TH 1:30 PM-2:45 PM", courses[2].MeetingString())
	assert.True(t, courses[3].MeetingTime().IsArranged())
	assert.Equal(t, "Arranged", courses[3].MeetingString())
}

func TestLoadCourses_MissingFile(t *testing.T) {
	_, err := NewRecordFile(filepath.Join(t.TempDir(), "missing.txt"), nil).LoadCourses()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCourseRecords_SkipsInvalid(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := strings.Join([]string{
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,TH,1330,1445",
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445", // repeated name/section
		"CSC216,No Space,001,3,someone,MW,1330,1445",                             // bad name
		"CSC 226,Discrete Math,001,six,tmbarnes,MWF,935,1025",                    // bad credits
		"CSC 226,Discrete Math,001,3,tmbarnes,A,935,1025",                        // arranged with times
		"CSC 230,C and Software Tools,001,3,dbsturgi,MW",                         // short without A
		"CSC 246,Operating Systems,001,3,jnsmith,MTWHFSU,1000,1100",              // weekend day
		"CSC 316,Data Structures and Algorithms,001,3,jtking,MW,1530,1645",
	}, "\n")

	courses, err := ReadCourseRecords(strings.NewReader(in), ',', zap.New(core))
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "TH", courses[0].MeetingTime().Days())
	assert.Equal(t, "CSC 316", courses[1].Name())
	assert.Equal(t, 6, logs.Len())

	first := logs.All()[0]
	assert.Equal(t, "skipping invalid record", first.Message)
	assert.EqualValues(t, 2, first.ContextMap()["line"])
}

func TestReadCourseRecords_Quotes(t *testing.T) {
	in := `CSC 116,Intro to "Java" Programming,001,3,jdyoung2,MW,910,1100
CSC 216,"Software Development, Fundamentals",001,3,sesmith5,TH,1330,1445
CSC 316,"Data ""Structures""",001,3,jtking,MW,1530,1645
`
	core, logs := observer.New(zapcore.WarnLevel)
	courses, err := ReadCourseRecords(strings.NewReader(in), ',', zap.New(core))
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, `Intro to "Java" Programming`, courses[0].Title())
	assert.Equal(t, "Software Development, Fundamentals", courses[1].Title())
	assert.Equal(t, `Data "Structures"`, courses[2].Title())
	assert.Zero(t, logs.Len())
}

func TestReadCourseRecords_Empty(t *testing.T) {
	courses, err := ReadCourseRecords(strings.NewReader(""), ',', zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestReadCourseRecords_Delimiter(t *testing.T) {
	in := "CSC 216;Software Development Fundamentals;001;3;sesmith5;TH;1330;1445\n"
	courses, err := ReadCourseRecords(strings.NewReader(in), ';', zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestParseCourse(t *testing.T) {
	c, err := ParseCourse(strings.Split("MA 241,Calculus II,003,4,abc,MWF,800,850", ","))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Credits())
	assert.Equal(t, "MA 241,Calculus II,003,4,abc,MWF,800,850", c.String())

	_, err = ParseCourse([]string{"MA 241", "Calculus II"})
	assert.ErrorIs(t, err, errRecordShape)

	_, err = ParseCourse(strings.Split("MA 241,Calculus II,003,4,abc,MWF,8am,850", ","))
	assert.ErrorIs(t, err, model.ErrInvalidMeeting)
}

func TestParseEvent(t *testing.T) {
	e, err := ParseEvent([]string{"Gym", "SU", "900", "1000", ""})
	require.NoError(t, err)
	assert.Equal(t, "Gym", e.Title())
	assert.Equal(t, "SU 9:00 AM-10:00 AM", e.MeetingString())

	_, err = ParseEvent([]string{"Gym", "A", "0", "0", ""})
	assert.ErrorIs(t, err, model.ErrInvalidMeeting)

	_, err = ParseEvent([]string{"Gym", "SU", "900"})
	assert.ErrorIs(t, err, errRecordShape)
}

func TestReadActivityRecords(t *testing.T) {
	in := "CSC 230,C and Software Tools,001,3,dbsturgi,A\n" +
		"Study Group,MW,1800,1900,Library\n" +
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,TH,1330,1445\n"

	activities, err := ReadActivityRecords(strings.NewReader(in), ',', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.IsType(t, &model.Course{}, activities[0])
	assert.IsType(t, &model.Event{}, activities[1])
	assert.IsType(t, &model.Course{}, activities[2])
}
