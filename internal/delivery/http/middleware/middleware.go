package middleware

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultCorsOrigins = "*"

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

// Middleware holds the settings the shared HTTP middlewares resolve once at
// startup. A nil *Middleware is usable and falls back to defaults.
type Middleware struct {
	log         *logrus.Logger
	corsOrigins string
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	m := &Middleware{corsOrigins: defaultCorsOrigins}
	if c == nil {
		return m
	}

	m.log = c.Log
	if c.Config != nil {
		if v := strings.TrimSpace(c.Config.GetString("api.cors.origins")); v != "" {
			m.corsOrigins = v
		}
	}
	return m
}

// CorsOrigins reports the allowed origins, comma separated.
func (m *Middleware) CorsOrigins() string {
	if m == nil {
		return defaultCorsOrigins
	}
	return m.corsOrigins
}
