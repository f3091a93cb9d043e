package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sillar/bookstore/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authGuard protects
// every catalog route plus /auth/me; sign-up and sign-in stay open.
func Register(app *fiber.App, authGuard fiber.Handler,
	auth *handlers.AuthHandler, authors *handlers.AuthorHandler,
	books *handlers.BookHandler, health *handlers.HealthHandler) {

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	a := app.Group("/auth")
	a.Post("/sign-up", auth.SignUp)
	a.Post("/sign-in", auth.SignIn)
	a.Get("/me", authGuard, auth.Me)

	ag := app.Group("/authors", authGuard)
	ag.Get("/", authors.List)
	ag.Post("/", authors.Create)
	ag.Get("/:id", authors.Show)
	ag.Put("/:id", authors.Update)
	ag.Delete("/:id", authors.Delete)
	ag.Get("/:id/books", authors.Books)

	bg := app.Group("/books", authGuard)
	bg.Get("/", books.List)
	bg.Post("/", books.Create)
	bg.Get("/:id", books.Show)
	bg.Put("/:id", books.Update)
	bg.Delete("/:id", books.Delete)
}
