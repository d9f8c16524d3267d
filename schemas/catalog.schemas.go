package schemas

// CourseSchema is one catalog entry, keyed by course number.
// All columns mirror the campus timetable dump and are plain text.
type CourseSchema struct {
	Number     string
	Credits    string
	Name       string
	Grade      string
	Category   string
	Time       string
	Location   string
	Department string
	Professor  string
	Language   string
}
