package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jcoronel/bantay"
)

// ContextCookie is the cookie carrying the caller's raw context token. The
// server only ever stores its hash.
const ContextCookie = "bantay_ctx"

// Adapter binds a portal core to a Fiber application. The core never sees
// HTTP; this adapter owns cookies, redirects, status codes and rate limiting.
type Adapter struct {
	app    *fiber.App
	portal *bantay.Bantay
	logins *loginLimiter
}

func New(app *fiber.App, portal *bantay.Bantay) *Adapter {
	return &Adapter{
		app:    app,
		portal: portal,
		logins: newLoginLimiter(defaultLoginRate, defaultLoginBurst),
	}
}

// RegisterRoutes wires the portal surface onto the app.
func (a *Adapter) RegisterRoutes() error {
	a.app.Use(a.withContext)

	// Public routes
	a.app.Post("/login", a.limitLogins, a.login)
	a.app.Post("/logout", a.logout)
	a.app.Get("/session", a.session)
	a.app.Post("/contact", a.contact)
	a.app.Get("/api/health", a.health)

	// Protected routes
	a.app.Get("/dashboard", a.dashboard)
	a.app.Get("/profile", a.profile)

	return nil
}
