package server

import (
	"context"
	"log/slog"
	"time"

	"fitlog/internal/auth"
	"fitlog/internal/middleware"
	"fitlog/internal/models"
	"fitlog/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const (
	requestTimeout   = 5 * time.Second
	maxWorkoutsLimit = 500
)

var errInvalidBody = models.NewValidationError("Invalid request body.")

// errorHandler renders errors that escape the handlers with the same {"message"} body.
func errorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

// respondError writes err to the client. Causes of server-side failures are logged and
// recorded on the request span, never returned.
func respondError(c *fiber.Ctx, err error) error {
	if models.StatusFor(err) >= fiber.StatusInternalServerError {
		observability.RecordErrorInContext(c.UserContext(), err)
		middleware.Logger.ErrorContext(c.UserContext(), "Request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, err)
}

// requestContext derives the context used for storage calls of one request.
func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

// parseBody decodes a JSON body into out. An empty body leaves out untouched so
// that missing fields are reported by validation rather than by the decoder.
func parseBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return errInvalidBody
	}
	return nil
}

// currentUserID returns the id stored by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(middleware.LocalUserID).(uint)
	return id
}

func currentClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(middleware.LocalClaims).(*auth.Claims)
	return claims
}

// parseLimit reads the optional ?limit= query parameter. Zero means no limit.
func parseLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	if limit > maxWorkoutsLimit {
		limit = maxWorkoutsLimit
	}
	return limit
}
