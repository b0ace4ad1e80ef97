package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rhyrak/wolfscheduler/internal/calendar"
	"github.com/rhyrak/wolfscheduler/internal/config"
	"github.com/rhyrak/wolfscheduler/internal/csvio"
	"github.com/rhyrak/wolfscheduler/internal/report"
	"github.com/rhyrak/wolfscheduler/internal/scheduler"
	"github.com/rhyrak/wolfscheduler/pkg/model"
)

var errQuit = errors.New("quit")

type command struct {
	usage string
	help  string
	run   func(sh *shell, args []string, raw string) error
}

var commands map[string]command

// rawVerbs take the rest of the line verbatim.
var rawVerbs = map[string]bool{"title": true}

func init() {
	commands = map[string]command{
		"catalog":  {"catalog [PATH]", "list the course catalog, or save it as csv", (*shell).catalog},
		"schedule": {"schedule", "list the schedule", (*shell).schedule},
		"full":     {"full", "list the schedule with all details", (*shell).full},
		"add":      {"add NAME,SECTION", "enroll in a catalog course", (*shell).add},
		"event":    {"event TITLE,DAYS,START,END[,DETAILS]", "add an event", (*shell).event},
		"remove":   {"remove INDEX", "remove the activity at INDEX", (*shell).remove},
		"drop":     {"drop NAME,SECTION", "drop an enrolled course", (*shell).drop},
		"reset":    {"reset", "clear the schedule", (*shell).reset},
		"title":    {"title TITLE", "rename the schedule", (*shell).title},
		"export":   {"export PATH", "save the schedule as records", (*shell).export},
		"import":   {"import PATH", "replace the schedule with saved records", (*shell).importFile},
		"report":   {"report PATH", "write the full schedule as csv", (*shell).report},
		"xlsx":     {"xlsx PATH", "write the schedule as an Excel workbook", (*shell).xlsx},
		"ics":      {"ics PATH", "write the schedule as an iCalendar file", (*shell).ics},
		"check":    {"check [PATH]", "check the schedule or a record file", (*shell).check},
		"credits":  {"credits", "print the enrolled credit hours", (*shell).credits},
		"help":     {"help", "print this help", (*shell).help},
		"quit":     {"quit", "exit", func(*shell, []string, string) error { return errQuit }},
	}
}

type shell struct {
	sched  *scheduler.Scheduler
	cfg    *config.Config
	out    io.Writer
	logger *zap.Logger
	prompt string
}

func newShell(sched *scheduler.Scheduler, cfg *config.Config, out io.Writer, logger *zap.Logger) *shell {
	csvio.UseReportDelimiter(cfg.ReportDelimiter())
	return &shell{sched: sched, cfg: cfg, out: out, logger: logger}
}

// run executes one command per line until quit or end of input.
// Command errors are printed and the shell keeps going.
func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, sh.prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := sh.exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(sh.out, "Error:", err)
		}
	}
}

func (sh *shell) exec(line string) error {
	verb, raw, _ := strings.Cut(line, " ")
	raw = strings.TrimSpace(raw)
	verb = strings.ToLower(verb)
	cmd, ok := commands[verb]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", verb)
	}
	var args []string
	if !rawVerbs[verb] {
		var err error
		if args, err = splitArgs(raw); err != nil {
			return err
		}
	}
	sh.logger.Debug("command", zap.String("verb", verb), zap.Strings("args", args))
	return cmd.run(sh, args, raw)
}

// splitArgs reads the arguments as one comma separated record.
func splitArgs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(raw))
	r.TrimLeadingSpace = true
	fields, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("bad arguments: %w", err)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

func want(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func shortTable(rows []model.ShortRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Fields())
	}
	return out
}

func (sh *shell) catalog(args []string, _ string) error {
	if len(args) == 1 {
		out, err := csvio.ExportCatalogString(sh.sched.CatalogRows())
		if err != nil {
			return err
		}
		path := sh.cfg.ExportPath(args[0])
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "Saved", path)
		return nil
	}
	csvio.PrintTable(sh.out, "Course Catalog", model.ShortHeader, shortTable(sh.sched.CatalogRows()))
	return nil
}

func (sh *shell) schedule(_ []string, _ string) error {
	csvio.PrintTable(sh.out, sh.sched.Title(), model.ShortHeader, shortTable(sh.sched.ScheduledRows()))
	return nil
}

func (sh *shell) full(_ []string, _ string) error {
	rows := sh.sched.FullScheduledRows()
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, r.Fields())
	}
	csvio.PrintTable(sh.out, sh.sched.Title(), model.LongHeader, table)
	return nil
}

func (sh *shell) add(args []string, _ string) error {
	if err := want(args, 2, commands["add"].usage); err != nil {
		return err
	}
	added, err := sh.sched.AddCourse(args[0], args[1])
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintf(sh.out, "%s-%s is not in the catalog.\n", args[0], args[1])
		return nil
	}
	fmt.Fprintf(sh.out, "Added %s-%s.\n", args[0], args[1])
	return nil
}

func (sh *shell) event(args []string, _ string) error {
	if len(args) == 4 {
		args = append(args, "")
	}
	if err := want(args, 5, commands["event"].usage); err != nil {
		return err
	}
	e, err := csvio.ParseEvent(args)
	if err != nil {
		return err
	}
	meeting := e.MeetingTime()
	if _, err := sh.sched.AddEvent(e.Title(), meeting.Days(), meeting.Start(), meeting.End(), e.Details()); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Added event %s.\n", e.Title())
	return nil
}

func (sh *shell) remove(args []string, _ string) error {
	if err := want(args, 1, commands["remove"].usage); err != nil {
		return err
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("usage: %s", commands["remove"].usage)
	}
	if !sh.sched.RemoveAt(idx) {
		fmt.Fprintf(sh.out, "Nothing at index %d.\n", idx)
		return nil
	}
	fmt.Fprintln(sh.out, "Removed.")
	return nil
}

func (sh *shell) drop(args []string, _ string) error {
	if err := want(args, 2, commands["drop"].usage); err != nil {
		return err
	}
	if !sh.sched.RemoveCourse(args[0], args[1]) {
		fmt.Fprintf(sh.out, "Not enrolled in %s-%s.\n", args[0], args[1])
		return nil
	}
	fmt.Fprintf(sh.out, "Dropped %s-%s.\n", args[0], args[1])
	return nil
}

func (sh *shell) reset(_ []string, _ string) error {
	sh.sched.Reset()
	fmt.Fprintln(sh.out, "Schedule cleared.")
	return nil
}

// title takes the raw line so titles may hold commas.
func (sh *shell) title(_ []string, raw string) error {
	if raw == "" {
		return fmt.Errorf("usage: %s", commands["title"].usage)
	}
	sh.sched.SetTitle(raw)
	return nil
}

func (sh *shell) recordFile(path string) csvio.RecordFile {
	return csvio.RecordFile{Path: sh.cfg.ExportPath(path), Comma: sh.cfg.CatalogDelimiter(), Logger: sh.logger}
}

func (sh *shell) export(args []string, _ string) error {
	if err := want(args, 1, commands["export"].usage); err != nil {
		return err
	}
	file := sh.recordFile(args[0])
	if err := sh.sched.ExportSchedule(file); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Saved", file.Path)
	return nil
}

func (sh *shell) importFile(args []string, _ string) error {
	if err := want(args, 1, commands["import"].usage); err != nil {
		return err
	}
	activities, err := sh.recordFile(args[0]).LoadActivities()
	if err != nil {
		return err
	}
	if err := sh.sched.RestoreSchedule(activities); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Loaded %d activities.\n", len(activities))
	return nil
}

func (sh *shell) report(args []string, _ string) error {
	if err := want(args, 1, commands["report"].usage); err != nil {
		return err
	}
	path, err := csvio.ExportReport(sh.sched.FullScheduledRows(), sh.cfg.ExportPath(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Saved", path)
	return nil
}

func (sh *shell) xlsx(args []string, _ string) error {
	if err := want(args, 1, commands["xlsx"].usage); err != nil {
		return err
	}
	path := sh.cfg.ExportPath(args[0])
	if err := report.SaveWorkbook(path, sh.sched.Title(), sh.sched.Schedule()); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Saved", path)
	return nil
}

func (sh *shell) ics(args []string, _ string) error {
	if err := want(args, 1, commands["ics"].usage); err != nil {
		return err
	}
	weekOf, err := sh.cfg.FirstWeek()
	if err != nil {
		return err
	}
	opts := calendar.Options{
		WeekOf:    weekOf,
		Weeks:     sh.cfg.Calendar.Weeks,
		ProductID: sh.cfg.Calendar.ProductID,
	}
	path := sh.cfg.ExportPath(args[0])
	if err := calendar.ExportFile(path, sh.sched.Title(), sh.sched.Schedule(), opts); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Saved", path)
	return nil
}

func (sh *shell) check(args []string, _ string) error {
	activities := sh.sched.Schedule()
	if len(args) == 1 {
		var err error
		if activities, err = sh.recordFile(args[0]).LoadActivities(); err != nil {
			return err
		}
	}
	ok, msg := scheduler.Validate(activities)
	fmt.Fprint(sh.out, msg)
	if ok {
		fmt.Fprintln(sh.out, "Passed all checks.")
	}
	return nil
}

func (sh *shell) credits(_ []string, _ string) error {
	fmt.Fprintf(sh.out, "Credits: %d\n", sh.sched.Credits())
	return nil
}

func (sh *shell) help(_ []string, _ string) error {
	verbs := make([]string, 0, len(commands))
	for v := range commands {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	for _, v := range verbs {
		fmt.Fprintf(sh.out, "  %-38s %s\n", commands[v].usage, commands[v].help)
	}
	return nil
}
