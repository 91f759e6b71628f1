package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	attService "volunteerhub_backend/internals/features/attendance/attendance/service"
	helper "volunteerhub_backend/internals/helpers"
)

type AttendanceController struct {
	Service *attService.AttendanceService
}

func NewAttendanceController(service *attService.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: service}
}

type checkRequest struct {
	UserID       string     `json:"userId"`
	EventID      string     `json:"eventId"`
	CheckInTime  *time.Time `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
}

func (r *checkRequest) ids() (uuid.UUID, uuid.UUID, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}
	eventID, err := uuid.Parse(r.EventID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid eventId")
	}
	return userID, eventID, nil
}

// POST /api/attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	userID, eventID, err := req.ids()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	record, err := ctrl.Service.CheckIn(userID, eventID, req.CheckInTime)
	if err != nil {
		log.Printf("[ERROR] check-in user %s event %s: %v", userID, eventID, err)
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Successfully checked in", fiber.Map{
		"attendance": record,
	})
}

// POST /api/attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	userID, eventID, err := req.ids()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	hours, record, err := ctrl.Service.CheckOut(userID, eventID, req.CheckOutTime)
	if err != nil {
		log.Printf("[ERROR] check-out user %s event %s: %v", userID, eventID, err)
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Successfully checked out", fiber.Map{
		"hours":      hours,
		"attendance": record,
	})
}
