package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"homey/controllers"
	"homey/cron"
	"homey/db"
	"homey/redis"
	"homey/routes"
)

func main() {
	app := fiber.New()
	client, st := db.Init()
	cache := redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("server is running")
	})
	routes.SetupUserRoutes(app, controllers.NewUserController(st))
	routes.SetupServiceRoutes(app, controllers.NewServiceController(st, cache))
	routes.SetupBookingRoutes(app, controllers.NewBookingController(st))

	// Reminders need a mail account; without one the job never starts.
	if os.Getenv("SMTP_HOST") != "" {
		cron.StartReminderJobs(st)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal(err)
		}
	}()
	log.Println("Server is on port: " + port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Database disconnect: %v", err)
	}
}
