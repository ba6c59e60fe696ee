package fiber

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jcoronel/bantay"
)

// Version reported by the health endpoint.
const Version = "2.0.0"

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input loginRequest
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	descriptor, err := a.portal.Authenticate(contextID(c), input.Username, input.Password)
	if err != nil {
		return handlePortalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome back, %s! Login successful.", descriptor.DisplayName),
		"session": descriptor,
	})
}

func (a *Adapter) logout(c fiber.Ctx) error {
	name := "User"
	if descriptor, ok := a.portal.CurrentSession(contextID(c)); ok {
		name = descriptor.DisplayName
	}

	if err := a.portal.Logout(contextID(c)); err != nil {
		return handlePortalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Goodbye %s! You have been securely logged out.", name),
	})
}

func (a *Adapter) session(c fiber.Ctx) error {
	descriptor, ok := a.portal.CurrentSession(contextID(c))
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": bantay.ErrNoSession.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(descriptor)
}

func (a *Adapter) dashboard(c fiber.Ctx) error {
	data, err := a.portal.Dashboard(contextID(c))
	if err != nil {
		return handlePortalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(data)
}

func (a *Adapter) profile(c fiber.Ctx) error {
	account, err := a.portal.Profile(contextID(c))
	if err != nil {
		return handlePortalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(account)
}

func (a *Adapter) contact(c fiber.Ctx) error {
	var input contactRequest
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	submission, err := a.portal.SubmitContact(contextID(c), bantay.ContactFields{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		return handlePortalError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Thank you %s! Your message %q has been sent successfully.",
			submission.Name, submission.Subject),
		"submission": submission,
	})
}

func (a *Adapter) health(c fiber.Ctx) error {
	snapshot := a.portal.HealthSnapshot()

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":      "healthy",
		"timestamp":   time.Now().Format(time.RFC3339),
		"version":     Version,
		"accounts":    snapshot.AccountCount,
		"usersOnline": snapshot.UsersWithLoginHistory,
	})
}

// handlePortalError renders portal errors the way each kind demands: denials
// become redirects, validation failures list every violation, credential
// failures stay generic.
func handlePortalError(c fiber.Ctx, err error) error {
	var denied *bantay.AccessDenied
	if errors.As(err, &denied) {
		// Never a 200 with protected content - always the redirect intent.
		return c.Redirect().Status(fiber.StatusFound).To(denied.Location)
	}

	var invalid *bantay.ValidationError
	if errors.As(err, &invalid) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errors": invalid.Violations,
		})
	}

	switch {
	case errors.Is(err, bantay.ErrEmptyCredentials):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})

	case errors.Is(err, bantay.ErrInvalidCredentials),
		errors.Is(err, bantay.ErrNoSession):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})

	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
