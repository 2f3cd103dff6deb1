package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"runcrew_backend/internals/features/attendance/analytics/dto"
	"runcrew_backend/internals/features/attendance/analytics/service"
	helper "runcrew_backend/internals/helpers"
	"runcrew_backend/internals/helpers/kst"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Service: service.NewAnalyticsService(db)}
}

// 🔵 GET /api/u/crews/:crewId/analytics/monthly?year=2024&month=3
func (ctrl *AnalyticsController) GetMonthlyAnalytics(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	now := kst.FromUTC(time.Now().UTC())
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "year must be a number")
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be a number")
	}

	result, err := ctrl.Service.Monthly(c.UserContext(), service.MonthlyQuery{
		CrewID:      crewID,
		Year:        year,
		Month:       month,
		RequesterID: userID,
	})
	if err != nil {
		return mapEngineError(c, err)
	}

	return helper.JsonOK(c, "Monthly analytics loaded", dto.ToMonthlyAnalyticsResponse(result))
}

// 🔵 GET /api/u/crews/:crewId/meetings?date=2024-03-09 (default: today, KST)
func (ctrl *AnalyticsController) GetMeetingsByDay(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	day := kst.FromUTC(time.Now().UTC())
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, kst.Location)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		day = parsed
	}

	groups, err := ctrl.Service.MeetingsForDay(c.UserContext(), crewID, day.Year(), int(day.Month()), day.Day())
	if err != nil {
		return mapEngineError(c, err)
	}

	return helper.JsonOK(c, "Meetings loaded", dto.ToMeetingGroupResponses(groups))
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func mapEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDataSource):
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to load data. Try again.")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
