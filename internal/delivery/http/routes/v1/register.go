package v1

import (
	"resume-forge/internal/delivery/http/handler"
	"resume-forge/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, auth *handler.AuthHandler, resume *handler.ResumeHandler, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if auth != nil {
		auth.RegisterRoutes(r.Group("/auth"))
	}
	if resume != nil {
		resume.RegisterRoutes(r.Group("/resumes"), authMw)
	}
}
