// =============================================================================
// 7 Aromas Production Planner - Deadline Parsing & Filtering
// =============================================================================
//
// Rows carry a ship-by date the planner uses twice:
//   - as a hard filter: rows due beyond the caller's horizon are excluded
//     from all processing
//   - as an urgency flag: rows due today or tomorrow produce urgency records
//
// A row whose date is missing or unparseable is never excluded by the
// deadline filter (it has no deadline constraint) and never flagged urgent.
//
// =============================================================================

package planner

import (
	"math"
	"strings"
	"time"
)

// UrgencyWindowDays is the day difference at or below which a row counts as
// urgent (ships today or tomorrow).
const UrgencyWindowDays = 1

// deadlineLayouts are tried in order. The export writes day-first dates;
// ISO forms cover re-saved spreadsheets.
var deadlineLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDeadline parses a ship-by cell. The export writes naive wall-clock
// dates, so they are anchored in the machine's local zone to match the
// local "now" all day arithmetic compares against. Returns ok=false when
// the cell is empty or matches no known layout; callers treat that as "no
// deadline".
func ParseDeadline(raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns the signed whole-day difference from now to the
// deadline, rounded down. A deadline 36 hours away is 1 day out; one that
// passed 2 hours ago is -1.
func DaysUntil(now, deadline time.Time) int {
	return int(math.Floor(deadline.Sub(now).Hours() / 24))
}

// cancelledStatuses are the status values that exclude a row outright,
// compared case-insensitively against the whole trimmed cell.
var cancelledStatuses = []string{"CANCELLED", "CANCELADO"}

// IsCancelled reports whether the status cell marks the order cancelled.
func IsCancelled(status string) bool {
	status = strings.ToUpper(strings.TrimSpace(status))
	for _, cancelled := range cancelledStatuses {
		if status == cancelled {
			return true
		}
	}
	return false
}
