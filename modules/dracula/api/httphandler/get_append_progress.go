package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/common/errs"
)

type getAppendProgressRequest struct {
	TxID string `params:"txid"`
}

type getAppendProgressResponse struct {
	TxID              string    `json:"txid"`
	Asset             string    `json:"asset"`
	LastCompletedStep int       `json:"lastCompletedStep"`
	TotalSteps        int       `json:"totalSteps"`
	LastSignature     string    `json:"lastSignature,omitempty"`
	Attempts          int       `json:"attempts"`
	Completed         bool      `json:"completed"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (h *HttpHandler) GetAppendProgress(ctx *fiber.Ctx) error {
	var req getAppendProgressRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	progress, err := h.usecase.GetAppendProgress(ctx.UserContext(), req.TxID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "progress not found")
		}
		return errors.Wrap(err, "error during GetAppendProgress")
	}
	return errors.WithStack(ctx.JSON(getAppendProgressResponse{
		TxID:              progress.TxID,
		Asset:             progress.Asset,
		LastCompletedStep: progress.LastCompletedStep,
		TotalSteps:        progress.TotalSteps,
		LastSignature:     progress.LastSignature,
		Attempts:          progress.Attempts,
		Completed:         progress.Completed,
		UpdatedAt:         progress.UpdatedAt,
	}))
}
