package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// RequestLogger writes the access log through the application logger when
// one is configured.
func (m *Middleware) RequestLogger(cfg logger.Config) fiber.Handler {
	if m != nil && m.log != nil {
		cfg.Output = m.log.WriterLevel(m.log.GetLevel())
	}
	return logger.New(cfg)
}
