package routes

import (
	"resume-forge/internal/delivery/http/handler"
	"resume-forge/internal/delivery/http/middleware"
	v1 "resume-forge/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, auth *handler.AuthHandler, resume *handler.ResumeHandler, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	v1.Register(r, auth, resume, authMw)
}
