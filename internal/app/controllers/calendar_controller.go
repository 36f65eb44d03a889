package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

// CalendarController handles academic calendar endpoints
type CalendarController struct {
	calendarService *services.CalendarService
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(calendarService *services.CalendarService) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
	}
}

// GetAllCalendarEvents lists every calendar event in date order
// @Summary List calendar events
// @Tags calendar
// @Produce json
// @Success 200 {array} models.AcademicCalendarEvent
// @Router /getAllCalendarEvents [get]
func (c *CalendarController) GetAllCalendarEvents(ctx *gin.Context) {
	events, err := c.calendarService.ListEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// AddCalendarEvent creates a calendar event
// @Summary Add a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body dto.CalendarEventRequest true "Event details"
// @Success 201 {object} dto.AddCalendarEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /addCalendarEvent [post]
func (c *CalendarController) AddCalendarEvent(ctx *gin.Context) {
	var req dto.CalendarEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Event name, dates and type are required"))
		return
	}

	event := calendarEventFromRequest(&req)
	if err := c.calendarService.AddEvent(ctx, event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddCalendarEventResponse{
		Message: "Calendar event added successfully",
		ID:      event.ID,
	})
}

// UpdateCalendarEvent rewrites an event by id
// @Summary Update a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.CalendarEventRequest true "Event details"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateCalendarEvent/{id} [put]
func (c *CalendarController) UpdateCalendarEvent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrCalendarEventNotFound)
		return
	}

	var req dto.CalendarEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Event name, dates and type are required"))
		return
	}

	event := calendarEventFromRequest(&req)
	event.ID = id
	if err := c.calendarService.UpdateEvent(ctx, event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Calendar event updated successfully"})
}

// DeleteCalendarEvent removes an event by id
// @Summary Delete a calendar event
// @Tags calendar
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteCalendarEvent/{id} [delete]
func (c *CalendarController) DeleteCalendarEvent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrCalendarEventNotFound)
		return
	}

	if err := c.calendarService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Calendar event deleted successfully"})
}

func calendarEventFromRequest(req *dto.CalendarEventRequest) *models.AcademicCalendarEvent {
	return &models.AcademicCalendarEvent{
		EventName:   req.EventName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		EventType:   req.EventType,
		Description: req.Description,
	}
}
