package routes

import (
	"resume-forge/internal/delivery/http/handler"
	"resume-forge/internal/delivery/http/middleware"
	"resume-forge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	auth   *handler.AuthHandler
	resume *handler.ResumeHandler
	wsh    *ws.Handler
	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	resume *handler.ResumeHandler,
	wsh *ws.Handler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{health: health, auth: auth, resume: resume, wsh: wsh, authMw: authMw}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.wsh != nil {
		app.Get("/ws/analyses", r.wsh.HandleAnalysisWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.auth, r.resume, r.authMw)
}
