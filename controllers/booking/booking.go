package booking

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"guesthouse-booking/logger"
	bookingModel "guesthouse-booking/models/booking"
	roomModel "guesthouse-booking/models/room"
	availabilityService "guesthouse-booking/services/availability"
	"guesthouse-booking/services/invoice"
	"guesthouse-booking/services/meal"
	"guesthouse-booking/services/orchestrator"
	"guesthouse-booking/services/pricing"
	"guesthouse-booking/types"
	bookingTypes "guesthouse-booking/types/booking"
	"guesthouse-booking/utils"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB           *gorm.DB
	Logger       *logger.AsyncLogger
	Aggregator   *availabilityService.Aggregator
	Orchestrator *orchestrator.Orchestrator
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger, aggregator *availabilityService.Aggregator, orch *orchestrator.Orchestrator) *BookingController {
	return &BookingController{
		DB:           db,
		Logger:       asyncLogger,
		Aggregator:   aggregator,
		Orchestrator: orch,
	}
}

// Helper function to log API requests and responses
func (bc *BookingController) logAPIRequest(c *fiber.Ctx) {
	logEntry := utils.CreateLogEntry(c)
	bc.Logger.Log(logEntry)
}

// Helper function to send response and log in one call
func (bc *BookingController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	bc.logAPIRequest(c)
	return result
}

type quoteView struct {
	Meals       bookingModel.MealSelection `json:"meals"`
	MealNotices []string                   `json:"meal_notices,omitempty"`
	Quote       pricing.Quote              `json:"quote"`
	Invoice     invoice.Invoice            `json:"invoice"`
}

// Quote prices a candidate stay without creating anything. Meal counts
// are clamped against the guest count first and any corrections are
// reported back alongside the pricing.
func (bc *BookingController) Quote(c *fiber.Ctx) error {
	var req bookingTypes.QuoteRequest
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

	checkIn, checkOut, rooms, errResp := bc.resolveStay(c, req.CheckIn, req.CheckOut, req.RoomIDs)
	if errResp != nil {
		return errResp(c)
	}

	meals, notices := meal.Normalize(req.Meals, req.GuestCount)
	quote := pricing.Compute(checkIn, checkOut, rooms, meals, req.GuestCount)
	if !quote.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "check_out must be after check_in",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quote computed successfully",
		Data: quoteView{
			Meals:       meals,
			MealNotices: notices,
			Quote:       quote,
			Invoice:     invoice.Build(quote, meals),
		},
	})
}

// Store submits a booking through the orchestrator: validation failures
// return to draft with an actionable message and no side effects; a
// primary-write failure is surfaced; the mirror write never affects the
// response.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
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

	checkIn, checkOut, rooms, errResp := bc.resolveStay(c, req.CheckIn, req.CheckOut, req.RoomIDs)
	if errResp != nil {
		return errResp(c)
	}

	draft := orchestrator.Draft{
		GuestName:    req.GuestName,
		GuestPhone:   req.GuestPhone,
		GuestEmail:   req.GuestEmail,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Rooms:        rooms,
		GuestCount:   req.GuestCount,
		Meals:        req.Meals,
		RoomStatuses: bc.Aggregator.RoomStatuses(rooms, checkIn, checkOut),
	}

	result := bc.Orchestrator.Submit(draft)
	if result.State == orchestrator.StateDraft {
		status := fiber.StatusUnprocessableEntity
		if result.Reason == orchestrator.ReasonWriteFailed {
			status = fiber.StatusInternalServerError
		}
		return bc.sendResponseWithLog(c, status, types.ApiResponse{
			Status:  status,
			Message: result.Reason,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    result,
	})
}

// List returns all bookings for staff, newest first.
func (bc *BookingController) List(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Preload("Guest").Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// UpdateStatus applies a staff status change to a booking.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	var req bookingTypes.StatusUpdateRequest
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

	var booking bookingModel.Booking
	if err := bc.DB.First(&booking, req.BookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if !booking.Status.CanBeUpdated() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: fmt.Sprintf("a %s booking can no longer be updated", booking.Status),
		})
	}

	booking.Status = bookingModel.BookingStatus(req.Status)
	if claims, ok := c.Locals("user").(map[string]interface{}); ok {
		if username, ok := claims["username"].(string); ok {
			booking.UpdatedBy = username
		}
	}

	if err := bc.DB.Save(&booking).Error; err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
		})
	}

	logger.Success(fmt.Sprintf("Booking %d status changed to %s", booking.ID, booking.Status))

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated successfully",
		Data:    booking,
	})
}

// resolveStay parses the stay dates and loads the selected rooms. The
// returned responder is non-nil when the request should be rejected.
func (bc *BookingController) resolveStay(c *fiber.Ctx, checkInRaw, checkOutRaw string, roomIDs []uint) (time.Time, time.Time, []roomModel.Room, func(*fiber.Ctx) error) {
	reject := func(status int, message string) func(*fiber.Ctx) error {
		return func(c *fiber.Ctx) error {
			return c.Status(status).JSON(types.ApiResponse{
				Status:  status,
				Message: message,
			})
		}
	}

	checkIn, err := utils.ParseDate(checkInRaw)
	if err != nil {
		return time.Time{}, time.Time{}, nil, reject(fiber.StatusBadRequest, "check_in must be a YYYY-MM-DD date")
	}
	checkOut, err := utils.ParseDate(checkOutRaw)
	if err != nil {
		return time.Time{}, time.Time{}, nil, reject(fiber.StatusBadRequest, "check_out must be a YYYY-MM-DD date")
	}

	var rooms []roomModel.Room
	if err := bc.DB.Where("id IN ?", roomIDs).Find(&rooms).Error; err != nil {
		logger.Error("Failed to load selected rooms", err)
		return time.Time{}, time.Time{}, nil, reject(fiber.StatusInternalServerError, "Database error")
	}
	if len(rooms) != len(roomIDs) {
		return time.Time{}, time.Time{}, nil, reject(fiber.StatusBadRequest, "one or more selected rooms do not exist")
	}

	return checkIn, checkOut, rooms, nil
}
