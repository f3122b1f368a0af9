package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beelineschool-pixel/account/app/models"
)

// Calendar maps the academic month cycle onto calendar dates. The cycle runs
// June through December of StartYear, then January through March of the
// following year. Vehicle fees fall due on the 10th of each month.
type Calendar struct {
	StartYear int
}

// ParseAcademicYear parses a "2025-2026" style academic year label.
func ParseAcademicYear(label string) (Calendar, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return Calendar{}, fmt.Errorf("academic year %q: want <start>-<end>", label)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Calendar{}, fmt.Errorf("academic year %q: bad start year", label)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return Calendar{}, fmt.Errorf("academic year %q: bad end year", label)
	}
	if end != start+1 {
		return Calendar{}, fmt.Errorf("academic year %q: years must be consecutive", label)
	}
	return Calendar{StartYear: start}, nil
}

// Label renders the academic year as "2025-2026".
func (c Calendar) Label() string {
	return fmt.Sprintf("%d-%d", c.StartYear, c.StartYear+1)
}

// VehicleDueDate returns the due date for the academic month at cycleIndex
// (0 = Jun .. 9 = Mar) as a YYYY-MM-DD string.
func (c Calendar) VehicleDueDate(cycleIndex int) string {
	// Jun is calendar month 5 zero-based; Jan..Mar wrap into the next year.
	calMonth := (cycleIndex + 5) % 12
	year := c.StartYear
	if calMonth <= 4 {
		year = c.StartYear + 1
	}
	return fmt.Sprintf("%04d-%02d-10", year, calMonth+1)
}

// MonthDueDate returns the due date for a named academic month, or an empty
// string for an unknown month.
func (c Calendar) MonthDueDate(month string) string {
	idx := models.MonthIndex(month)
	if idx < 0 {
		return ""
	}
	return c.VehicleDueDate(idx)
}
