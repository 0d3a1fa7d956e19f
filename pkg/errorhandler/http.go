package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewHTTPErrorHandler returns the catch-all fiber error handler.
// Every application failure answers 500 with the error message; callers tell causes apart by message or code.
func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(errorResponse{Error: e.Message}))
		}

		resp := errorResponse{Error: err.Error()}
		if e := new(errs.PublicError); errors.As(err, &e) {
			resp = errorResponse{Error: e.Message(), Code: e.Code()}
		} else if kind, ok := errs.KindOf(err); ok {
			resp = errorResponse{Error: kind.Error(), Code: kind.Code()}
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, api error", err,
			slogx.String("event", "api_error"),
			slogx.String("code", resp.Code),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(resp))
	}
}
