package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// ScheduleController handles timetable endpoints
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetAllSchedules lists timetable entries with distinct counts
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.ScheduleListResponse
// @Router /getAllSchedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.scheduleService.ListSchedules(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddSchedule creates a timetable entry
// @Summary Add a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.AddScheduleRequest true "Schedule information"
// @Success 201 {object} dto.AddScheduleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /addSchedule [post]
func (c *ScheduleController) AddSchedule(ctx *gin.Context) {
	var req dto.AddScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	schedule := scheduleFromRequest(&req)
	if err := c.scheduleService.AddSchedule(ctx, schedule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddScheduleResponse{
		Message:    "Schedule added successfully",
		ScheduleID: schedule.ID,
	})
}

// UpdateSchedule replaces a timetable entry
// @Summary Update a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body dto.AddScheduleRequest true "Schedule information"
// @Success 200 {object} dto.ScheduleMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateSchedule/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid schedule ID"))
		return
	}

	var req dto.AddScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	schedule := scheduleFromRequest(&req)
	schedule.ID = id
	if err := c.scheduleService.UpdateSchedule(ctx, schedule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ScheduleMutationResponse{
		Message:    "Schedule updated successfully",
		ScheduleID: idStr,
	})
}

// DeleteSchedule removes a timetable entry
// @Summary Delete a schedule
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.ScheduleMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteSchedule/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid schedule ID"))
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ScheduleMutationResponse{
		Message:    "Schedule deleted successfully",
		ScheduleID: idStr,
	})
}

func scheduleFromRequest(req *dto.AddScheduleRequest) *models.Schedule {
	return &models.Schedule{
		ClassName:  req.ClassName,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Teacher:    req.Teacher,
		Classroom:  req.Classroom,
		Weekday:    req.Weekday,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Semester:   req.Semester,
	}
}
