package helpers

import (
	"reflect"
	"testing"

	"campushub_server/schemas"
)

func TestParseTimeGrid_PairwiseCells(t *testing.T) {
	cells := ParseTimeGrid("Wed 1A,1B Tue 2A,2B")

	want := []OccupancyCell{
		{Day: "Wed", Period: "1A"},
		{Day: "Wed", Period: "1B"},
		{Day: "Tue", Period: "2A"},
		{Day: "Tue", Period: "2B"},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
}

func TestParseTimeGrid_CellCountMatchesPeriodTokens(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"Wed 1A", 1},
		{"Wed 1A,1B", 2},
		{"Wed 1A,1B Tue 2A,2B", 4},
		{"Mon 1A Tue 2A Fri 3A,3B,3C", 5},
	}
	for _, tt := range tests {
		if got := len(ParseTimeGrid(tt.raw)); got != tt.want {
			t.Errorf("ParseTimeGrid(%q) produced %d cells, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseTimeGrid_TrailingTokenIgnored(t *testing.T) {
	cells := ParseTimeGrid("Wed 1A,1B Fri")

	want := []OccupancyCell{
		{Day: "Wed", Period: "1A"},
		{Day: "Wed", Period: "1B"},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
}

func TestParseTimeGrid_MalformedYieldsNoCells(t *testing.T) {
	for _, raw := range []string{"", "   ", "Wed", "Wed ,", "Wed ,,,"} {
		if cells := ParseTimeGrid(raw); len(cells) != 0 {
			t.Errorf("ParseTimeGrid(%q) = %v, want no cells", raw, cells)
		}
	}
}

func TestFindConflict_NamesFirstCollidingEntry(t *testing.T) {
	schedule := []schemas.ScheduleEntrySchema{
		{Number: "CS101", Name: "Introduction to Computer Science", Time: "Wed 1A,1B Tue 2A,2B"},
		{Number: "MA201", Name: "Linear Algebra", Time: "Wed 1A"},
	}

	hit := FindConflict(ParseTimeGrid("Wed 1A Thu 3A"), schedule)
	if hit == nil {
		t.Fatal("expected a conflict on (Wed,1A)")
	}
	if hit.Number != "CS101" {
		t.Fatalf("conflict names %s, want CS101 (first in stored order)", hit.Number)
	}
}

func TestFindConflict_DisjointCells(t *testing.T) {
	schedule := []schemas.ScheduleEntrySchema{
		{Number: "CS101", Time: "Wed 1A,1B Tue 2A,2B"},
	}

	if hit := FindConflict(ParseTimeGrid("Thu 3A"), schedule); hit != nil {
		t.Fatalf("unexpected conflict with %s", hit.Number)
	}
}

func TestFindConflict_CaseSensitiveCells(t *testing.T) {
	schedule := []schemas.ScheduleEntrySchema{
		{Number: "CS101", Time: "Wed 1A"},
	}

	if hit := FindConflict(ParseTimeGrid("wed 1a"), schedule); hit != nil {
		t.Fatalf("cells must compare exactly, got conflict with %s", hit.Number)
	}
}

func TestFindConflict_UnparseableNeverBlocksOrBlocked(t *testing.T) {
	schedule := []schemas.ScheduleEntrySchema{
		{Number: "CS101", Time: "Wed 1A,1B"},
		{Number: "XX000", Time: "not a grid"},
	}

	// a course with no parseable timing occupies nothing
	if hit := FindConflict(ParseTimeGrid("garbage"), schedule); hit != nil {
		t.Fatalf("unparseable candidate conflicted with %s", hit.Number)
	}
	if hit := FindConflict(ParseTimeGrid("Mon 4A"), schedule); hit != nil {
		t.Fatalf("unparseable entry conflicted as %s", hit.Number)
	}
}
