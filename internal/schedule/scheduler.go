package schedule

import (
	"slices"
	"sync"
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// Scheduler owns calendar appointments, kept ascending by start time.
type Scheduler struct {
	mu           sync.RWMutex
	grid         Grid
	appointments []model.CalendarAppointment
	selectedDate time.Time
}

// DayColumn is one day of a week view with placed appointments.
type DayColumn struct {
	Date         time.Time
	Appointments []PlacedAppointment
}

// PlacedAppointment couples an appointment with its grid position.
type PlacedAppointment struct {
	Appointment  model.CalendarAppointment
	Placement    Placement
	Placed       bool
	RenderExtent float64
}

// WeekView is the seven-column calendar grid starting at Start.
type WeekView struct {
	Start time.Time
	Hours []int
	Days  []DayColumn
}

// NewScheduler constructs scheduler with initial appointments.
func NewScheduler(grid Grid, appointments []model.CalendarAppointment, selected time.Time) *Scheduler {
	s := &Scheduler{
		grid:         grid,
		appointments: cloneAppointments(appointments),
		selectedDate: selected,
	}
	s.sortLocked()
	return s
}

// Grid returns grid settings.
func (s *Scheduler) Grid() Grid {
	return s.grid
}

func (s *Scheduler) sortLocked() {
	slices.SortStableFunc(s.appointments, func(a, b model.CalendarAppointment) int {
		return a.StartTime.Compare(b.StartTime)
	})
}

// Add inserts appointment and restores start time ordering.
func (s *Scheduler) Add(a model.CalendarAppointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, a.Clone())
	s.sortLocked()
}

// Update replaces appointment with the same id. Unknown ids are ignored.
func (s *Scheduler) Update(a model.CalendarAppointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(a.ID)
	if idx < 0 {
		return false
	}
	s.appointments[idx] = a.Clone()
	s.sortLocked()
	return true
}

// Delete removes appointment by id.
func (s *Scheduler) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}
	s.appointments = append(s.appointments[:idx:idx], s.appointments[idx+1:]...)
	return true
}

// Move shifts appointment to newStart keeping its duration.
func (s *Scheduler) Move(id string, newStart time.Time) (model.CalendarAppointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveLocked(id, newStart)
}

func (s *Scheduler) moveLocked(id string, newStart time.Time) (model.CalendarAppointment, bool) {
	idx := s.indexLocked(id)
	if idx < 0 {
		return model.CalendarAppointment{}, false
	}
	apt := s.appointments[idx]
	if apt.StartTime.Equal(newStart) {
		return apt.Clone(), true
	}
	duration := apt.EndTime.Sub(apt.StartTime)
	apt.StartTime = newStart
	apt.EndTime = newStart.Add(duration)
	s.appointments[idx] = apt
	s.sortLocked()
	return apt.Clone(), true
}

// Relocate moves appointment onto a week grid slot at whole-hour precision.
// Invalid slots and drops onto the current start leave the calendar untouched.
func (s *Scheduler) Relocate(id string, weekStart time.Time, slot Slot) (model.CalendarAppointment, bool) {
	if !slot.Valid(s.grid) {
		return model.CalendarAppointment{}, false
	}
	target := slot.Start(weekStart, s.grid.location())

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return model.CalendarAppointment{}, false
	}
	if s.appointments[idx].StartTime.Equal(target) {
		return s.appointments[idx].Clone(), false
	}
	return s.moveLocked(id, target)
}

// SetSelectedDate stores the date the calendar is focused on.
func (s *Scheduler) SetSelectedDate(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = t
}

// SelectedDate returns the focused calendar date.
func (s *Scheduler) SelectedDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// Get returns appointment by id.
func (s *Scheduler) Get(id string) (model.CalendarAppointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return model.CalendarAppointment{}, false
	}
	return s.appointments[idx].Clone(), true
}

// Appointments returns a copy of all appointments in start order.
func (s *Scheduler) Appointments() []model.CalendarAppointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAppointments(s.appointments)
}

// Len returns number of appointments.
func (s *Scheduler) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

// Between returns appointments starting in [from, to).
func (s *Scheduler) Between(from, to time.Time) []model.CalendarAppointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.CalendarAppointment
	for _, a := range s.appointments {
		if !a.StartTime.Before(from) && a.StartTime.Before(to) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// Day returns appointments starting on the same calendar day as date.
func (s *Scheduler) Day(date time.Time) []model.CalendarAppointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.CalendarAppointment
	for _, a := range s.appointments {
		if s.grid.SameDay(a.StartTime, date) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// Week builds seven day columns starting at weekStart with grid placements.
func (s *Scheduler) Week(weekStart time.Time) WeekView {
	loc := s.grid.location()
	start := s.grid.DayStart(weekStart)
	view := WeekView{Start: start, Hours: s.grid.Hours(), Days: make([]DayColumn, DaysPerWeek)}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range view.Days {
		y, m, d := start.Date()
		day := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		column := DayColumn{Date: day}
		for _, a := range s.appointments {
			if !s.grid.SameDay(a.StartTime, day) {
				continue
			}
			placement, ok := s.grid.Place(a)
			placed := PlacedAppointment{Appointment: a.Clone(), Placement: placement, Placed: ok}
			if ok {
				placed.RenderExtent = placement.RenderExtent(s.grid.MinExtent)
			}
			column.Appointments = append(column.Appointments, placed)
		}
		view.Days[i] = column
	}
	return view
}

func (s *Scheduler) indexLocked(id string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAppointments(src []model.CalendarAppointment) []model.CalendarAppointment {
	out := make([]model.CalendarAppointment, len(src))
	for i, a := range src {
		out[i] = a.Clone()
	}
	return out
}
