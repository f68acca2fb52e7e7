package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/leapbw/leapauth"
)

type handlers struct {
	manager *leapauth.Manager
	gate    *leapauth.Gate
}

// successResponse mirrors the result shape the screens consume:
// { success, user } on the happy path, { success, error } otherwise.
func successResponse(user *leapauth.User) fiber.Map {
	return fiber.Map{"success": true, "user": user}
}

func (h *handlers) register(c fiber.Ctx) error {
	var input leapauth.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.manager.Register(c.Context(), input)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(successResponse(user))
}

func (h *handlers) login(c fiber.Ctx) error {
	var input struct {
		Omang    string `json:"omang"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.manager.Login(c.Context(), input.Omang, input.Password)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(successResponse(user))
}

func (h *handlers) logout(c fiber.Ctx) error {
	if err := h.manager.Logout(c.Context()); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *handlers) session(c fiber.Ctx) error {
	state := h.manager.State()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user":    state.User,
		"loading": state.Loading,
		"graph":   h.gate.Current().String(),
	})
}

func (h *handlers) updateProfile(c fiber.Ctx) error {
	var patch leapauth.ProfileUpdate
	if err := c.Bind().Body(&patch); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.manager.UpdateProfile(c.Context(), patch)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(successResponse(user))
}

func (h *handlers) deleteAccount(c fiber.Ctx) error {
	if err := h.manager.DeleteAccount(c.Context()); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *handlers) enrollProgram(c fiber.Ctx) error {
	var input struct {
		ProgramID string `json:"programId"`
	}
	if err := c.Bind().Body(&input); err != nil || input.ProgramID == "" {
		return badRequest(c, "programId is required")
	}

	user, err := h.manager.EnrollProgram(c.Context(), input.ProgramID)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(successResponse(user))
}

func (h *handlers) completeCourse(c fiber.Ctx) error {
	var input struct {
		Points int `json:"points"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.manager.CompleteCourse(c.Context(), input.Points)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(successResponse(user))
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// handleAuthError maps auth errors to appropriate HTTP responses
func handleAuthError(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// mapErrorToStatus maps the sentinel error taxonomy to HTTP status codes
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, leapauth.ErrInvalidCredentials),
		errors.Is(err, leapauth.ErrNotAuthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, leapauth.ErrOmangTaken):
		return http.StatusConflict

	case errors.Is(err, leapauth.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, leapauth.ErrOmangRequired),
		errors.Is(err, leapauth.ErrPasswordRequired),
		errors.Is(err, leapauth.ErrPasswordTooShort),
		errors.Is(err, leapauth.ErrPasswordTooLong),
		errors.Is(err, leapauth.ErrNameRequired):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
