package http

import (
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const headerKeyIdempotencyKey = "Idempotency-Key"

// requestFieldsMiddleware adds the route to the request logger set up by NewEcho.
func requestFieldsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		logger := log.FromContext(req.Context()).WithFields(logrus.Fields{
			"method": req.Method,
			"path":   c.Path(),
		})
		c.SetRequest(req.WithContext(log.ToContext(req.Context(), logger)))

		return next(c)
	}
}
