package routes

import (
	"os"

	availabilityController "guesthouse-booking/controllers/availability"
	bookingController "guesthouse-booking/controllers/booking"
	calendarController "guesthouse-booking/controllers/calendar"
	roomController "guesthouse-booking/controllers/room"
	"guesthouse-booking/httpServices/ledger"
	"guesthouse-booking/logger"
	"guesthouse-booking/middleware"
	availabilityService "guesthouse-booking/services/availability"
	"guesthouse-booking/services/orchestrator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	ledgerClient := ledger.NewClient(os.Getenv("LEGACY_LEDGER_URL"))
	asyncLogger := logger.NewAsyncLogger(db)

	aggregator := availabilityService.NewAggregator(availabilityService.NewGormSource(db), ledgerClient)
	orch := orchestrator.New(orchestrator.NewGormStore(db), ledgerClient)

	rooms := roomController.NewRoomController(db)
	availability := availabilityController.NewAvailabilityController(db, aggregator)
	bookings := bookingController.NewBookingController(db, asyncLogger, aggregator, orch)
	calendars := calendarController.NewCalendarController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "guesthouse-booking",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/rooms", rooms.List)
	api.Post("/availability", availability.Check)
	api.Get("/rooms/:id/calendar.ics", calendars.Export)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking")
	bookingGroup.Post("/quote", bookings.Quote)
	bookingGroup.Post("/create", bookings.Store)

	/*=============================================================================
	| Staff Routes
	===============================================================================*/
	admin := api.Group("/admin").Use(middleware.RequireStaff())
	admin.Get("/bookings", bookings.List)
	admin.Post("/booking/status", bookings.UpdateStatus)
	admin.Post("/rooms/:id/ota-blocks", calendars.ImportBlocks)
}
