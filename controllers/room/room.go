package room

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"guesthouse-booking/logger"
	roomModel "guesthouse-booking/models/room"
	"guesthouse-booking/services/capacity"
	"guesthouse-booking/types"
)

// RoomController handles room catalogue requests
type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

type roomView struct {
	roomModel.Room
	Sleeps int `json:"sleeps"`
}

// List returns every room with its derived sleeping capacity.
func (rc *RoomController) List(c *fiber.Ctx) error {
	var rooms []roomModel.Room
	if err := rc.DB.Order("id").Find(&rooms).Error; err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	views := make([]roomView, len(rooms))
	for i, r := range rooms {
		views[i] = roomView{Room: r, Sleeps: capacity.CapacityOf(r.Capacity)}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rooms retrieved successfully",
		Data:    views,
	})
}
