package schedule

import (
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// Grid maps appointment time ranges onto a fixed-hour day column.
type Grid struct {
	StartHour  int
	EndHour    int
	UnitHeight float64
	MinExtent  float64
	Location   *time.Location
}

// Placement is the vertical position of an appointment inside a day column.
type Placement struct {
	Offset float64
	Extent float64
}

// RenderExtent applies the minimum display height. It is never stored.
func (p Placement) RenderExtent(minExtent float64) float64 {
	if p.Extent < minExtent {
		return minExtent
	}
	return p.Extent
}

// DefaultGrid returns the 9:00-19:00 grid with 80 units per hour.
func DefaultGrid() Grid {
	return Grid{StartHour: 9, EndHour: 19, UnitHeight: 80, MinExtent: 40, Location: time.Local}
}

func (g Grid) location() *time.Location {
	if g.Location == nil {
		return time.Local
	}
	return g.Location
}

// Place computes offset and extent for the appointment.
// Appointments starting outside [StartHour, EndHour) are not placed.
func (g Grid) Place(a model.CalendarAppointment) (Placement, bool) {
	start := a.StartTime.In(g.location())
	hour, minute := start.Hour(), start.Minute()
	if hour < g.StartHour || hour >= g.EndHour {
		return Placement{}, false
	}

	offset := float64((hour-g.StartHour)*60+minute) / 60 * g.UnitHeight
	extent := a.EndTime.Sub(a.StartTime).Minutes() / 60 * g.UnitHeight
	return Placement{Offset: offset, Extent: extent}, true
}

// Hours lists hourly rows of the grid.
func (g Grid) Hours() []int {
	if g.EndHour <= g.StartHour {
		return nil
	}
	hours := make([]int, 0, g.EndHour-g.StartHour)
	for h := g.StartHour; h < g.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SameDay reports whether both instants fall on one calendar day in grid location.
func (g Grid) SameDay(a, b time.Time) bool {
	loc := g.location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DayStart returns local midnight of t.
func (g Grid) DayStart(t time.Time) time.Time {
	loc := g.location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// WeekStart returns local midnight of the first day of the week containing t.
func WeekStart(t time.Time, firstDay time.Weekday, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	shift := (int(local.Weekday()) - int(firstDay) + 7) % 7
	y, m, d := local.Date()
	return time.Date(y, m, d-shift, 0, 0, 0, 0, loc)
}
