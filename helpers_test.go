package freeconnect_test

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

// appTransport routes SDK requests into an in-process fiber app, so tests
// exercise the full HTTP path without a listener.
func appTransport(app *fiber.App) http.RoundTripper {
	return freeconnect.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
		return app.Test(req)
	})
}

// countingTransport wraps a RoundTripper and counts how many requests reach
// it.
type countingTransport struct {
	base  http.RoundTripper
	calls atomic.Int64
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return t.base.RoundTrip(req)
}

// mintToken produces a token shaped like the backend's: HS256 with user_id
// and user_role claims and the FreeConnect issuer.
func mintToken(userID uint, role string) string {
	claims := jwt.MapClaims{
		"user_id":   userID,
		"user_role": role,
		"iss":       "FreeConnect",
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		panic(err)
	}
	return token
}

func testUser(id uint, role freeconnect.Role) *freeconnect.User {
	return &freeconnect.User{
		ID:    id,
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  role,
	}
}

// authBackend is a minimal stand-in for the marketplace's auth endpoints.
func authBackend(token string, user *freeconnect.User) *fiber.App {
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
		}
		if body.Password != "open sesame" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.JSON(fiber.Map{"token": token, "user": user})
	})
	app.Post("/register", func(c *fiber.Ctx) error {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
		}
		if body.Email == "taken@example.com" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
	})
	return app
}
