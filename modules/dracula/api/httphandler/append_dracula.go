package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/pkg/solanarpc"
)

// maxTxIDLength is the longest base58 encoding of a 64-byte signature.
const maxTxIDLength = 88

type appendDraculaRequest struct {
	TxID string `params:"txid"`
}

func (r appendDraculaRequest) Validate() error {
	if r.TxID == "" {
		return errs.NewPublicError("txid is required")
	}
	if len(r.TxID) > maxTxIDLength {
		return errs.NewPublicError("txid is too long")
	}
	return nil
}

type appendDraculaResponse struct {
	Signature  string               `json:"signature"`
	Commitment solanarpc.Commitment `json:"commitment"`
}

// AppendDracula answers with the confirmation of the last appended story item.
func (h *HttpHandler) AppendDracula(ctx *fiber.Ctx) error {
	var req appendDraculaRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	confirmation, err := h.usecase.AppendDracula(ctx.UserContext(), req.TxID)
	if err != nil {
		return errors.Wrap(err, "error during AppendDracula")
	}
	return errors.WithStack(ctx.JSON(appendDraculaResponse{
		Signature:  confirmation.Signature,
		Commitment: confirmation.Commitment,
	}))
}
