package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (m *Middleware) CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Content-Length, Accept-Encoding",
		AllowMethods:  "GET, POST, PUT, DELETE",
		AllowOrigins:  m.CorsOrigins(),
		ExposeHeaders: "Content-Length, Content-Type",
		MaxAge:        600,
	})
}
