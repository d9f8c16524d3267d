package helpers

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/schemas"
	"campushub_server/store/storetest"
)

func seedCatalog(st *storetest.Store) {
	st.AddCourse(&schemas.CourseSchema{
		Number:    "CS101",
		Name:      "Introduction to Computer Science",
		Time:      "Wed 1A,1B Tue 2A,2B",
		Credits:   "3",
		Professor: "Kim",
		Location:  "E201",
	})
	st.AddCourse(&schemas.CourseSchema{
		Number: "CS202",
		Name:   "Data Structures",
		Time:   "Wed 1A Thu 3A",
	})
	st.AddCourse(&schemas.CourseSchema{
		Number: "PH110",
		Name:   "Physics Seminar",
		Time:   "Thu 3A",
	})
}

func seedUser(st *storetest.Store, username string) *schemas.UserSchema {
	user := &schemas.UserSchema{
		Username:   username,
		Name:       "Alice",
		StudentID:  "20230001",
		FriendList: []string{},
		Timetable:  []schemas.ScheduleEntrySchema{},
		Created:    time.Now().UTC(),
	}
	st.AddUser(user)
	return user
}

func operationKind(t *testing.T, err error) errors.Kind {
	t.Helper()
	if err == nil {
		t.Fatal("expected an operation error")
	}
	opErr, ok := errors.AsOperation(err)
	if !ok {
		t.Fatalf("expected tagged error, got %v", err)
	}
	return opErr.Kind
}

func TestAddCourse_SnapshotsCatalogEntry(t *testing.T) {
	st := storetest.New()
	seedCatalog(st)
	user := seedUser(st, "alice")

	timetable, err := AddCourse(global.Context, st, st, user, "CS101")
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	if len(timetable) != 1 {
		t.Fatalf("timetable has %d entries, want 1", len(timetable))
	}
	entry := timetable[0]
	if entry.Number != "CS101" || entry.Name != "Introduction to Computer Science" || entry.Professor != "Kim" {
		t.Fatalf("snapshot = %+v", entry)
	}

	stored, err := st.GetUser(global.Context, "alice")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !reflect.DeepEqual(stored.Timetable, timetable) {
		t.Fatalf("persisted timetable = %v, want %v", stored.Timetable, timetable)
	}
}

func TestAddCourse_UnknownNumber(t *testing.T) {
	st := storetest.New()
	seedCatalog(st)
	user := seedUser(st, "alice")

	_, err := AddCourse(global.Context, st, st, user, "ZZ999")
	if kind := operationKind(t, err); kind != errors.KindNotFound {
		t.Fatalf("kind = %s, want NotFound", kind)
	}
}

func TestAddCourse_RejectsDuplicateWithoutChange(t *testing.T) {
	st := storetest.New()
	seedCatalog(st)
	user := seedUser(st, "alice")

	if _, err := AddCourse(global.Context, st, st, user, "CS101"); err != nil {
		t.Fatalf("first AddCourse: %v", err)
	}
	before, _ := st.GetUser(global.Context, "alice")

	user, _ = st.GetUser(global.Context, "alice")
	_, err := AddCourse(global.Context, st, st, user, "CS101")
	if kind := operationKind(t, err); kind != errors.KindAlreadyExists {
		t.Fatalf("kind = %s, want AlreadyExists", kind)
	}

	after, _ := st.GetUser(global.Context, "alice")
	if !reflect.DeepEqual(after.Timetable, before.Timetable) {
		t.Fatalf("second call changed the stored schedule: %v -> %v", before.Timetable, after.Timetable)
	}
}

func TestAddCourse_ConflictNamesCollidingCourse(t *testing.T) {
	st := storetest.New()
	seedCatalog(st)
	user := seedUser(st, "alice")

	if _, err := AddCourse(global.Context, st, st, user, "CS101"); err != nil {
		t.Fatalf("AddCourse CS101: %v", err)
	}

	// CS202 shares (Wed,1A) with CS101
	user, _ = st.GetUser(global.Context, "alice")
	_, err := AddCourse(global.Context, st, st, user, "CS202")
	if kind := operationKind(t, err); kind != errors.KindConflict {
		t.Fatalf("kind = %s, want Conflict", kind)
	}
	opErr, _ := errors.AsOperation(err)
	if !strings.Contains(opErr.Description, "CS101") {
		t.Fatalf("conflict description %q does not name CS101", opErr.Description)
	}

	// PH110 occupies only (Thu,3A) and fits
	user, _ = st.GetUser(global.Context, "alice")
	if _, err := AddCourse(global.Context, st, st, user, "PH110"); err != nil {
		t.Fatalf("AddCourse PH110: %v", err)
	}
}

func TestRemoveCourse_AbsentIsNoOp(t *testing.T) {
	st := storetest.New()
	seedCatalog(st)
	user := seedUser(st, "alice")

	if _, err := AddCourse(global.Context, st, st, user, "CS101"); err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	before, _ := st.GetUser(global.Context, "alice")

	user, _ = st.GetUser(global.Context, "alice")
	timetable, err := RemoveCourse(global.Context, st, user, "ZZ999")
	if err != nil {
		t.Fatalf("RemoveCourse on absent number: %v", err)
	}
	if !reflect.DeepEqual(timetable, before.Timetable) {
		t.Fatalf("schedule changed by absent removal: %v -> %v", before.Timetable, timetable)
	}
}

func TestRemoveCourse_DropsMatchingEntries(t *testing.T) {
	st := storetest.New()
	seedCatalog(st)
	user := seedUser(st, "alice")

	if _, err := AddCourse(global.Context, st, st, user, "CS101"); err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	user, _ = st.GetUser(global.Context, "alice")
	if _, err := AddCourse(global.Context, st, st, user, "PH110"); err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	user, _ = st.GetUser(global.Context, "alice")
	timetable, err := RemoveCourse(global.Context, st, user, "CS101")
	if err != nil {
		t.Fatalf("RemoveCourse: %v", err)
	}
	if len(timetable) != 1 || timetable[0].Number != "PH110" {
		t.Fatalf("timetable = %v, want only PH110", timetable)
	}

	stored, _ := st.GetUser(global.Context, "alice")
	if !reflect.DeepEqual(stored.Timetable, timetable) {
		t.Fatalf("persisted timetable = %v, want %v", stored.Timetable, timetable)
	}
}
