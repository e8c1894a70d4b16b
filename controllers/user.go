package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"homey/store"
	"homey/utils"
)

type UserController struct {
	store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{store: s}
}

// RegisterUser creates the user unless the email is already taken.
// Registration is idempotent: a repeat call with the same email answers
// without inserting a second document.
func (uc *UserController) RegisterUser(c *fiber.Ctx) error {
	body := store.Document{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Error: err.Error()})
	}
	email, _ := body["email"].(string)
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Error: "email is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	_, err := uc.store.Users.FindOne(ctx, store.Document{"email": email})
	if err == nil {
		return c.JSON(utils.MessageResponse{Message: "User already exists"})
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return internalError(c, "register user", err)
	}

	result, err := uc.store.Users.InsertOne(ctx, body)
	if err != nil {
		return internalError(c, "register user", err)
	}
	return c.JSON(result)
}

// GetUserByEmail fetches one user by exact email match.
func (uc *UserController) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := uc.store.Users.FindOne(ctx, store.Document{"email": email})
	if errors.Is(err, store.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Error: "User not found"})
	}
	if err != nil {
		return internalError(c, "get user", err)
	}
	return c.JSON(user)
}
