package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jcoronel/bantay/pkg/crypto"
)

const localsContextID = "contextID"

// withContext resolves the caller context for every request. A returning
// client presents its context cookie; a new client gets one minted. The
// session store is keyed by the token's hash, never the raw cookie value.
func (a *Adapter) withContext(c fiber.Ctx) error {
	if raw := c.Cookies(ContextCookie); raw != "" {
		c.Locals(localsContextID, crypto.HashToken(raw))
		return c.Next()
	}

	pair, err := crypto.MintContextToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to establish session context",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     ContextCookie,
		Value:    pair.Token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})

	c.Locals(localsContextID, pair.Hash)
	return c.Next()
}

// contextID returns the caller context resolved by withContext.
func contextID(c fiber.Ctx) string {
	if id, ok := c.Locals(localsContextID).(string); ok {
		return id
	}
	return ""
}
