package availability

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"guesthouse-booking/logger"
	roomModel "guesthouse-booking/models/room"
	availabilityService "guesthouse-booking/services/availability"
	"guesthouse-booking/types"
	bookingTypes "guesthouse-booking/types/booking"
	"guesthouse-booking/utils"
)

// AvailabilityController handles availability lookups for candidate stays
type AvailabilityController struct {
	DB         *gorm.DB
	Aggregator *availabilityService.Aggregator
}

func NewAvailabilityController(db *gorm.DB, aggregator *availabilityService.Aggregator) *AvailabilityController {
	return &AvailabilityController{DB: db, Aggregator: aggregator}
}

type roomStatusView struct {
	RoomID uint                           `json:"room_id"`
	Name   string                         `json:"name"`
	Status availabilityService.RoomStatus `json:"status"`
}

// Check computes the availability of every room for a candidate stay.
// Ledger failures never fail the request; they degrade to partial data.
func (ac *AvailabilityController) Check(c *fiber.Ctx) error {
	var req bookingTypes.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "check_in must be a YYYY-MM-DD date",
		})
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "check_out must be a YYYY-MM-DD date",
		})
	}
	if !checkOut.After(checkIn) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "check_out must be after check_in",
		})
	}

	var rooms []roomModel.Room
	if err := ac.DB.Order("id").Find(&rooms).Error; err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	statuses := ac.Aggregator.RoomStatuses(rooms, checkIn, checkOut)

	views := make([]roomStatusView, len(rooms))
	for i, r := range rooms {
		views[i] = roomStatusView{RoomID: r.ID, Name: r.Name, Status: statuses[r.ID]}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Availability computed successfully",
		Data:    views,
	})
}
