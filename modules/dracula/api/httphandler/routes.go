package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	router.Get("/init", h.Initialize)
	router.Get("/dracula/:txid", h.AppendDracula)
	router.Get("/dracula/:txid/progress", h.GetAppendProgress)
	return nil
}
