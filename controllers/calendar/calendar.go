package calendar

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"guesthouse-booking/logger"
	"guesthouse-booking/models/blockeddate"
	bookingModel "guesthouse-booking/models/booking"
	roomModel "guesthouse-booking/models/room"
	"guesthouse-booking/services/ical"
	"guesthouse-booking/types"
)

// CalendarController handles iCal export and OTA feed ingestion
type CalendarController struct {
	DB *gorm.DB
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

// Export publishes a room's active bookings as an iCal feed for external
// calendars (OTA channel managers poll this).
func (cc *CalendarController) Export(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("id")
	if err != nil || roomID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	var room roomModel.Room
	if err := cc.DB.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to load room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var bookings []bookingModel.Booking
	err = cc.DB.
		Where("status IN ?", []bookingModel.BookingStatus{
			bookingModel.BookingStatusPending,
			bookingModel.BookingStatusBooked,
			bookingModel.BookingStatusConfirmed,
		}).
		Find(&bookings).Error
	if err != nil {
		logger.Error("Failed to load bookings for calendar export", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="room-%d.ics"`, room.ID))
	return c.SendString(ical.ExportRoomCalendar(room, bookings))
}

// ImportBlocks ingests an OTA iCal feed for a room, replacing that
// source's previously ingested blocked nights.
func (cc *CalendarController) ImportBlocks(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("id")
	if err != nil || roomID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	var room roomModel.Room
	if err := cc.DB.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to load room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	source := c.Query("source", "ota")
	blocks := ical.ParseBlocks(string(c.Body()), room.ID, source)

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ? AND source = ?", room.ID, source).Delete(&blockeddate.BlockedDate{}).Error; err != nil {
			return err
		}
		if len(blocks) == 0 {
			return nil
		}
		return tx.Create(&blocks).Error
	})
	if err != nil {
		logger.Error("Failed to store blocked dates", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to store blocked dates",
		})
	}

	logger.Success(fmt.Sprintf("Ingested %d blocked night(s) for room %s from %s", len(blocks), room.Name, source))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Blocked dates ingested successfully",
		Data: map[string]interface{}{
			"room_id": room.ID,
			"source":  source,
			"nights":  len(blocks),
		},
	})
}
