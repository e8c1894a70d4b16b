package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homey/store"
)

func TestRegisterUserIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	app := newTestApp(st)

	resp := request(t, app, fiber.MethodPost, "/adduser", fiber.Map{"email": "a@x.com", "name": "Anna"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, true, body["acknowledged"])
	assert.NotEmpty(t, body["insertedId"])

	// Same email again: answered, but nothing inserted.
	resp = request(t, app, fiber.MethodPost, "/adduser", fiber.Map{"email": "a@x.com", "name": "Someone Else"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User already exists", decodeMap(t, resp)["message"])

	users, err := st.Users.Find(context.Background(), store.Document{"email": "a@x.com"}, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Anna", users[0]["name"])
}

func TestRegisterUserRequiresEmail(t *testing.T) {
	app := newTestApp(store.NewMemoryStore())

	resp := request(t, app, fiber.MethodPost, "/adduser", fiber.Map{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserByEmail(t *testing.T) {
	app := newTestApp(store.NewMemoryStore())

	request(t, app, fiber.MethodPost, "/adduser", fiber.Map{
		"email": "a@x.com",
		"name":  "Anna",
		"city":  "Dhaka", // unknown fields pass through untouched
	})

	resp := request(t, app, fiber.MethodGet, "/users/a@x.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeMap(t, resp)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "Anna", user["name"])
	assert.Equal(t, "Dhaka", user["city"])
}

func TestGetUserByEmailNotFound(t *testing.T) {
	app := newTestApp(store.NewMemoryStore())

	resp := request(t, app, fiber.MethodGet, "/users/nobody@x.com", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", decodeMap(t, resp)["error"])
}
