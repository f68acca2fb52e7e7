// Package fiber mounts the auth operations on a Fiber v3 app. It is the
// consumer surface standing in for the mobile screens: every route drives
// the same manager the navigation gate observes.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/leapbw/leapauth"
)

type Adapter struct {
	app *fiber.App
}

var _ leapauth.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(auth *leapauth.Auth) error {
	h := &handlers{manager: auth.Manager, gate: auth.Gate}
	api := a.app.Group(auth.BasePath)

	// Anonymous routes
	api.Post("/register", h.register)
	api.Post("/login", h.login)

	// Session routes
	api.Get("/session", h.session)
	api.Post("/logout", h.logout)
	api.Patch("/profile", h.updateProfile)
	api.Delete("/account", h.deleteAccount)
	api.Post("/progress/enroll", h.enrollProgram)
	api.Post("/progress/complete", h.completeCourse)

	return nil
}
