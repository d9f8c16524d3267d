package schemas

// ScheduleEntrySchema is a snapshot of a catalog course taken at add-time.
// The snapshot keeps a schedule stable even if the catalog row changes later.
type ScheduleEntrySchema struct {
	Number     string
	Name       string
	Time       string
	Credits    string
	Professor  string
	Location   string
	Department string
}

// AddCourseSchema struct
type AddCourseSchema struct {
	Number string `validate:"required,max=100"`
}

// RemoveCourseSchema struct
type RemoveCourseSchema struct {
	Number string `validate:"required,max=100"`
}

// TimetableSchema struct
type TimetableSchema struct {
	Timetable []ScheduleEntrySchema
}
