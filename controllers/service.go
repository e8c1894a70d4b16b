package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"homey/models"
	"homey/store"
	"homey/utils"
)

const (
	featuredLimit    = 3
	featuredCacheKey = "featuredservices"
	featuredCacheTTL = 30 * time.Second
)

type ServiceController struct {
	store *store.Store
	cache *redis.Client // nil when caching is disabled
}

func NewServiceController(s *store.Store, cache *redis.Client) *ServiceController {
	return &ServiceController{store: s, cache: cache}
}

// CreateService inserts the request body verbatim as a new service.
func (sc *ServiceController) CreateService(c *fiber.Ctx) error {
	body := store.Document{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Error: err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := sc.store.Services.InsertOne(ctx, body)
	if err != nil {
		log.Printf("create service: %v", err)
		// The misspelling is load-bearing: existing clients match on it.
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Error: "An error occured"})
	}
	return c.JSON(result)
}

// UpdateService overwrites only the fields named in the body. Unnamed
// fields of the stored document stay untouched.
func (sc *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := store.ParseID(c.Params("id"))
	if err != nil {
		return internalError(c, "update service", err)
	}
	patch := store.Document{}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Error: err.Error()})
	}
	delete(patch, "_id") // the id is not a client-writable field

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := sc.store.Services.UpdateOne(ctx, store.Document{"_id": id}, patch)
	if err != nil {
		return internalError(c, "update service", err)
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Error: "Service not found"})
	}
	return c.JSON(fiber.Map{"updatedCount": result.ModifiedCount})
}

// GetAllServices lists every service, or the ones whose serviceName
// contains the query parameter as a case-insensitive substring.
func (sc *ServiceController) GetAllServices(c *fiber.Ctx) error {
	filter := store.Document{}
	if query := c.Query("query"); query != "" {
		filter = store.Contains("serviceName", query)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	services, err := sc.store.Services.Find(ctx, filter, 0)
	if err != nil {
		return internalError(c, "list services", err)
	}
	return c.JSON(services)
}

// GetFeaturedServices returns at most 3 services in the store's natural
// order. Cached briefly when Redis is configured.
func (sc *ServiceController) GetFeaturedServices(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if sc.cache != nil {
		if cached, err := sc.cache.Get(ctx, featuredCacheKey).Result(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	services, err := sc.store.Services.Find(ctx, store.Document{}, featuredLimit)
	if err != nil {
		return internalError(c, "featured services", err)
	}

	if sc.cache != nil {
		if payload, err := json.Marshal(services); err == nil {
			if err := sc.cache.Set(ctx, featuredCacheKey, payload, featuredCacheTTL).Err(); err != nil {
				log.Printf("featured services cache: %v", err)
			}
		}
	}
	return c.JSON(services)
}

// GetServicesByProvider lists the services whose email field equals the
// path parameter.
func (sc *ServiceController) GetServicesByProvider(c *fiber.Ctx) error {
	email := c.Params("email")

	ctx, cancel := reqCtx(c)
	defer cancel()

	services, err := sc.store.Services.Find(ctx, store.Document{"email": email}, 0)
	if err != nil {
		return internalError(c, "services by provider", err)
	}
	return c.JSON(services)
}

// GetServiceWithProvider fetches the service, then the user its email
// field references. The two reads are not atomic.
func (sc *ServiceController) GetServiceWithProvider(c *fiber.Ctx) error {
	id, err := store.ParseID(c.Params("id"))
	if err != nil {
		return internalError(c, "get service", err)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	service, err := sc.store.Services.FindOne(ctx, store.Document{"_id": id})
	if errors.Is(err, store.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Error: "Service not found"})
	}
	if err != nil {
		return internalError(c, "get service", err)
	}

	providerEmail, _ := service["email"].(string)
	provider, err := sc.store.Users.FindOne(ctx, store.Document{"email": providerEmail})
	if errors.Is(err, store.ErrNoDocuments) {
		// Dangling provider reference. Nothing stops a service pointing
		// at an email no user has.
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Error: "User not found"})
	}
	if err != nil {
		return internalError(c, "get service provider", err)
	}

	return c.JSON(models.ServiceDetail{Service: service, Provider: provider})
}

// DeleteService removes one service by id.
func (sc *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := store.ParseID(c.Params("id"))
	if err != nil {
		return internalError(c, "delete service", err)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := sc.store.Services.DeleteOne(ctx, store.Document{"_id": id})
	if err != nil {
		return internalError(c, "delete service", err)
	}
	if result.DeletedCount == 0 {
		// This endpoint reports with a message key, not an error key.
		return c.Status(fiber.StatusNotFound).JSON(utils.MessageResponse{Message: "Service not found"})
	}
	return c.JSON(utils.MessageResponse{Message: "Service deleted successfully"})
}
