package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"homey/utils"
)

// Every store call gets a hard deadline so a dead database cannot hang
// a request forever.
const storeTimeout = 10 * time.Second

func reqCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), storeTimeout)
}

// internalError logs the real failure and answers with the generic
// body. Malformed ids land here too: a bad token is an infrastructure
// class failure on this API, not a 404.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("%s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Error: "Internal Server Error"})
}
