package routes

import (
	"github.com/gofiber/fiber/v2"

	"homey/controllers"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App, bookings *controllers.BookingController) {
	app.Post("/addbookings", bookings.CreateBooking)
	app.Patch("/updateStatus/:id", bookings.UpdateBookingStatus)
	app.Get("/myschedules/:email", bookings.GetSchedules)
}
