package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
)

// DaysPerWeek is the number of day columns in a week view.
const DaysPerWeek = 7

// Slot is a drop target on the week grid.
type Slot struct {
	Day  int
	Hour int
}

// ParseSlot parses slot identifiers of the form "<day>-<hour>".
func ParseSlot(id string) (Slot, error) {
	dayStr, hourStr, ok := strings.Cut(strings.TrimSpace(id), "-")
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidSlot, id)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidSlot, id)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidSlot, id)
	}
	return Slot{Day: day, Hour: hour}, nil
}

// String renders slot identifier.
func (s Slot) String() string {
	return fmt.Sprintf("%d-%d", s.Day, s.Hour)
}

// Valid reports whether slot lies inside the week and the grid hours.
func (s Slot) Valid(g Grid) bool {
	return s.Day >= 0 && s.Day < DaysPerWeek && s.Hour >= g.StartHour && s.Hour < g.EndHour
}

// Start returns the absolute instant of the slot for a week beginning at weekStart.
func (s Slot) Start(weekStart time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	ws := weekStart.In(loc)
	y, m, d := ws.Date()
	return time.Date(y, m, d+s.Day, s.Hour, 0, 0, 0, loc)
}
