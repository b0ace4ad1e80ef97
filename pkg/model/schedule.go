package model

// ShortRow is the catalog and schedule listing row.
type ShortRow struct {
	Name    string `csv:"name"`
	Section string `csv:"section"`
	Title   string `csv:"title"`
	Meeting string `csv:"meeting_days"`
}

func (r ShortRow) Fields() []string {
	return []string{r.Name, r.Section, r.Title, r.Meeting}
}

// LongRow is the full schedule row. Course rows leave Details empty and
// event rows leave Name, Section, Credits and Instructor empty.
type LongRow struct {
	Name       string `csv:"name"`
	Section    string `csv:"section"`
	Title      string `csv:"title"`
	Credits    string `csv:"credits"`
	Instructor string `csv:"instructor_id"`
	Meeting    string `csv:"meeting_days"`
	Details    string `csv:"event_details"`
}

func (r LongRow) Fields() []string {
	return []string{r.Name, r.Section, r.Title, r.Credits, r.Instructor, r.Meeting, r.Details}
}

var (
	ShortHeader = []string{"Name", "Section", "Title", "Meeting Days"}
	LongHeader  = []string{"Name", "Section", "Title", "Credits", "Instructor", "Meeting Days", "Event Details"}
)

// ShortRows projects every activity to its listing row.
func ShortRows[A Activity](activities []A) []ShortRow {
	rows := make([]ShortRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, a.ShortDisplay())
	}
	return rows
}

// LongRows projects every activity to its full row.
func LongRows(activities []Activity) []LongRow {
	rows := make([]LongRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, a.LongDisplay())
	}
	return rows
}
