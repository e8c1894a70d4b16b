package routes

import (
	"github.com/gofiber/fiber/v2"

	"homey/controllers"
)

func SetupServiceRoutes(app *fiber.App, services *controllers.ServiceController) {
	app.Post("/addservice", services.CreateService)
	app.Patch("/updateservice/:id", services.UpdateService)
	app.Get("/services", services.GetAllServices)
	app.Get("/featuredservices", services.GetFeaturedServices)
	app.Get("/myservices/:email", services.GetServicesByProvider)
	app.Get("/services/:id", services.GetServiceWithProvider)
	app.Delete("/deleteservice/:id", services.DeleteService)
}
