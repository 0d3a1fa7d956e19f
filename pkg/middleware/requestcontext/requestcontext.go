package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/pkg/logger"
)

// requestcontextError is returned by an Option to stop the request with a status.
type requestcontextError struct {
	status  int
	message string
}

func (r requestcontextError) Error() string {
	return r.message
}

type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// New builds the request context from opts and stores it as the fiber user context.
func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				rErr := requestcontextError{}
				if errors.As(err, &rErr) {
					return c.Status(rErr.status).JSON(fiber.Map{"error": rErr.message})
				}

				logger.ErrorContext(ctx, "failed to extract request context", err,
					slog.String("event", "requestcontext/error"),
					slog.Int("optionIndex", i),
				)
				return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
