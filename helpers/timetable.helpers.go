package helpers

import (
	"context"

	"campushub_server/errors"
	"campushub_server/schemas"
	"campushub_server/store"
)

// AddCourse adds a catalog course to a user's timetable: catalog lookup,
// duplicate check, conflict check, then a snapshot append persisted as the
// whole schedule list. The updated list is returned. The read-modify-write
// carries no version guard; concurrent adds for one user are
// last-write-wins.
func AddCourse(ctx context.Context, users store.UserStore, catalog store.CourseStore, user *schemas.UserSchema, number string) ([]schemas.ScheduleEntrySchema, error) {

	course, err := catalog.GetCourse(ctx, number)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.Operation(errors.KindNotFound, "Course", "not found")
		}
		return nil, errors.Operation(errors.KindStoreFailure, "courses", err.Error())
	}

	for i := range user.Timetable {
		if user.Timetable[i].Number == number {
			return nil, errors.Operation(errors.KindAlreadyExists, "Course", "already scheduled")
		}
	}

	if hit := FindConflict(ParseTimeGrid(course.Time), user.Timetable); hit != nil {
		return nil, errors.Operation(errors.KindConflict, "Timetable", "conflicts with "+hit.Number+" ("+hit.Name+")")
	}

	user.Timetable = append(user.Timetable, schemas.ScheduleEntrySchema{
		Number:     course.Number,
		Name:       course.Name,
		Time:       course.Time,
		Credits:    course.Credits,
		Professor:  course.Professor,
		Location:   course.Location,
		Department: course.Department,
	})

	if err := users.PutUser(ctx, user); err != nil {
		return nil, errors.Operation(errors.KindStoreFailure, "users", err.Error())
	}
	return user.Timetable, nil
}

// RemoveCourse drops every timetable entry matching the course number and
// persists the resulting list. An absent number is a no-op, not an error.
func RemoveCourse(ctx context.Context, users store.UserStore, user *schemas.UserSchema, number string) ([]schemas.ScheduleEntrySchema, error) {

	kept := make([]schemas.ScheduleEntrySchema, 0, len(user.Timetable))
	for _, entry := range user.Timetable {
		if entry.Number == number {
			continue
		}
		kept = append(kept, entry)
	}
	user.Timetable = kept

	if err := users.PutUser(ctx, user); err != nil {
		return nil, errors.Operation(errors.KindStoreFailure, "users", err.Error())
	}
	return user.Timetable, nil
}
