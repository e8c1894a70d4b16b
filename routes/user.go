package routes

import (
	"github.com/gofiber/fiber/v2"

	"homey/controllers"
)

func SetupUserRoutes(app *fiber.App, users *controllers.UserController) {
	app.Post("/adduser", users.RegisterUser)
	app.Get("/users/:email", users.GetUserByEmail)
}
