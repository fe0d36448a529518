package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/schedule"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// CalendarHandler manages appointment endpoints.
type CalendarHandler struct {
	facade CalendarFacade
}

// NewCalendarHandler constructs CalendarHandler.
func NewCalendarHandler(facade CalendarFacade) *CalendarHandler {
	return &CalendarHandler{facade: facade}
}

// List handles GET /api/calendar/appointments?from=&to=.
func (h *CalendarHandler) List(c *gin.Context) {
	from, err := timeQuery(c, "from")
	if err != nil {
		respondError(c, err, false)
		return
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		respondError(c, err, false)
		return
	}

	appointments, err := h.facade.Appointments(from, to)
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponses(appointments))
}

// Get handles GET /api/calendar/appointments/:id.
func (h *CalendarHandler) Get(c *gin.Context) {
	apt, err := h.facade.Appointment(c.Param("id"))
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(apt))
}

// Week handles GET /api/calendar/week?date=.
func (h *CalendarHandler) Week(c *gin.Context) {
	date, err := timeQuery(c, "date")
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toWeekResponse(h.facade.Week(date)))
}

// Day handles GET /api/calendar/day?date=.
func (h *CalendarHandler) Day(c *gin.Context) {
	date, err := timeQuery(c, "date")
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponses(h.facade.Day(date)))
}

// Create handles POST /api/calendar/appointments.
func (h *CalendarHandler) Create(c *gin.Context) {
	var req dto.AppointmentDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	apt, err := h.facade.CreateAppointment(c.Request.Context(), toAppointmentDraft(req))
	if err != nil {
		respondError(c, err, true)
		return
	}
	c.JSON(http.StatusCreated, toAppointmentResponse(apt))
}

// Update handles PUT /api/calendar/appointments/:id.
func (h *CalendarHandler) Update(c *gin.Context) {
	var req dto.AppointmentDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	apt, err := h.facade.UpdateAppointment(c.Request.Context(), c.Param("id"), toAppointmentDraft(req))
	if err != nil {
		respondError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(apt))
}

// Delete handles DELETE /api/calendar/appointments/:id.
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, false)
		return
	}
	c.Status(http.StatusNoContent)
}

// Move handles POST /api/calendar/appointments/:id/move.
func (h *CalendarHandler) Move(c *gin.Context) {
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	apt, err := h.facade.MoveAppointment(c.Request.Context(), c.Param("id"), req.Start)
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(apt))
}

// Relocate handles POST /api/calendar/appointments/:id/relocate.
func (h *CalendarHandler) Relocate(c *gin.Context) {
	var req dto.RelocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	apt, err := h.facade.RelocateAppointment(c.Request.Context(), c.Param("id"), req.WeekStart, req.Slot)
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(apt))
}

// ScheduleOrder handles POST /api/calendar/orders/:id/schedule.
func (h *CalendarHandler) ScheduleOrder(c *gin.Context) {
	var req dto.ScheduleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	apt, err := h.facade.ScheduleOrder(c.Request.Context(), c.Param("id"), req.Start)
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusCreated, toAppointmentResponse(apt))
}

// SelectedDate handles GET /api/calendar/selected-date.
func (h *CalendarHandler) SelectedDate(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SelectedDateResponse{Date: h.facade.SelectedDate()})
}

// SetSelectedDate handles PUT /api/calendar/selected-date.
func (h *CalendarHandler) SetSelectedDate(c *gin.Context) {
	var req dto.SelectedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.facade.SetSelectedDate(req.Date); err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, dto.SelectedDateResponse{Date: h.facade.SelectedDate()})
}

func toAppointmentDraft(req dto.AppointmentDraftRequest) model.AppointmentDraft {
	return model.AppointmentDraft{
		OrderID:    req.OrderID,
		ClientName: req.ClientName,
		CarModel:   req.CarModel,
		Services:   req.Services,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     model.OrderStatus(req.Status),
	}
}

func toAppointmentResponse(apt model.CalendarAppointment) dto.AppointmentResponse {
	services := apt.Services
	if services == nil {
		services = []string{}
	}
	return dto.AppointmentResponse{
		ID:         apt.ID,
		OrderID:    apt.OrderID,
		ClientName: apt.ClientName,
		CarModel:   apt.CarModel,
		Services:   services,
		StartTime:  apt.StartTime,
		EndTime:    apt.EndTime,
		Status:     string(apt.Status),
	}
}

func toAppointmentResponses(appointments []model.CalendarAppointment) []dto.AppointmentResponse {
	resp := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp = append(resp, toAppointmentResponse(a))
	}
	return resp
}

func toWeekResponse(week schedule.WeekView) dto.WeekResponse {
	days := make([]dto.DayResponse, 0, len(week.Days))
	for _, d := range week.Days {
		placed := make([]dto.PlacedAppointmentResponse, 0, len(d.Appointments))
		for _, p := range d.Appointments {
			item := dto.PlacedAppointmentResponse{
				AppointmentResponse: toAppointmentResponse(p.Appointment),
				Placed:              p.Placed,
			}
			if p.Placed {
				offset, extent, render := p.Placement.Offset, p.Placement.Extent, p.RenderExtent
				item.Offset, item.Extent, item.RenderExtent = &offset, &extent, &render
			}
			placed = append(placed, item)
		}
		days = append(days, dto.DayResponse{Date: d.Date, Appointments: placed})
	}
	return dto.WeekResponse{Start: week.Start, Hours: week.Hours, Days: days}
}
