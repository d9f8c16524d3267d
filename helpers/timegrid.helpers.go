package helpers

import (
	"strings"

	"campushub_server/schemas"
)

// OccupancyCell is one (day, period) slot a course session occupies.
// Cells compare exactly; day and period tokens are never normalized.
type OccupancyCell struct {
	Day    string
	Period string
}

// ParseTimeGrid converts a raw meeting-time string like
// "Wed 1A,1B Tue 2A,2B" into occupancy cells. Tokens are consumed
// pairwise: a day token followed by a comma-separated period list. A
// trailing unpaired token is ignored and garbage yields no cells, so dirty
// catalog data never blocks and is never blocked.
func ParseTimeGrid(raw string) []OccupancyCell {
	tokens := strings.Fields(raw)
	cells := []OccupancyCell{}
	for i := 0; i+1 < len(tokens); i += 2 {
		day := tokens[i]
		for _, period := range strings.Split(tokens[i+1], ",") {
			if period == "" {
				continue
			}
			cells = append(cells, OccupancyCell{Day: day, Period: period})
		}
	}
	return cells
}

// FindConflict returns the first schedule entry, in stored order, whose
// recomputed cells intersect the candidate's, or nil when every entry is
// disjoint. Detection stops at the first colliding entry.
func FindConflict(candidate []OccupancyCell, schedule []schemas.ScheduleEntrySchema) *schemas.ScheduleEntrySchema {
	if len(candidate) == 0 {
		return nil
	}

	occupied := make(map[OccupancyCell]bool, len(candidate))
	for _, cell := range candidate {
		occupied[cell] = true
	}

	for i := range schedule {
		for _, cell := range ParseTimeGrid(schedule[i].Time) {
			if occupied[cell] {
				return &schedule[i]
			}
		}
	}
	return nil
}
