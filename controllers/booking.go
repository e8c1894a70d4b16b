package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"homey/models"
	"homey/store"
	"homey/utils"
)

type BookingController struct {
	store *store.Store
}

func NewBookingController(s *store.Store) *BookingController {
	return &BookingController{store: s}
}

// CreateBooking inserts the request body verbatim. The assigned id is
// deliberately not surfaced to the caller.
func (bc *BookingController) CreateBooking(c *fiber.Ctx) error {
	body := store.Document{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Error: err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := bc.store.Bookings.InsertOne(ctx, body); err != nil {
		log.Printf("create booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Error: "An error occurred while processing the booking"})
	}
	return c.Status(fiber.StatusCreated).JSON(utils.MessageResponse{Message: "Booking confirmed successfully"})
}

// UpdateBookingStatus sets the status field and nothing else. Any
// string is accepted; there is no transition table.
func (bc *BookingController) UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := store.ParseID(c.Params("id"))
	if err != nil {
		return internalError(c, "update booking status", err)
	}
	payload := struct {
		NewStatus string `json:"newStatus"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Error: err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := bc.store.Bookings.UpdateOne(ctx, store.Document{"_id": id}, store.Document{"status": payload.NewStatus})
	if err != nil {
		return internalError(c, "update booking status", err)
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Error: "Booking not found"})
	}
	return c.JSON(utils.MessageResponse{Message: "Status updated successfully"})
}

// GetSchedules runs two independent queries: bookings the user made and
// bookings made against them as a provider. No dedup across the two.
func (bc *BookingController) GetSchedules(c *fiber.Ctx) error {
	email := c.Params("email")

	ctx, cancel := reqCtx(c)
	defer cancel()

	bookings, err := bc.store.Bookings.Find(ctx, store.Document{"userEmail": email}, 0)
	if err != nil {
		return internalError(c, "schedules", err)
	}
	myWork, err := bc.store.Bookings.Find(ctx, store.Document{"providerEmail": email}, 0)
	if err != nil {
		return internalError(c, "schedules", err)
	}
	return c.JSON(models.ScheduleList{Bookings: bookings, MyWork: myWork})
}
