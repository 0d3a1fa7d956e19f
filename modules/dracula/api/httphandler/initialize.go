package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/pkg/storyclient"
)

type initializeResponse struct {
	Signature string                     `json:"signature"`
	Metadata  storyclient.WriterMetadata `json:"metadata"`
}

func (h *HttpHandler) Initialize(ctx *fiber.Ctx) error {
	result, err := h.usecase.Initialize(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during Initialize")
	}
	return errors.WithStack(ctx.JSON(initializeResponse{
		Signature: result.Signature,
		Metadata:  result.Metadata,
	}))
}
