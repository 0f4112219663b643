package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/presentation/http/dto/request"
	"github.com/sangkips/posledger/internal/presentation/http/dto/response"
	"github.com/sangkips/posledger/pkg/apperror"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, gin.H{"printer": h.printerService.GetStatus()})
}

// PrintReceipt prints a stored receipt identified by date and receipt_no.
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req request.ReceiptLookup
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidJSON)
		return
	}
	if err := req.Normalize(); err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.printerService.PrintReceipt(c.Request.Context(), req.Date, req.ReceiptNo)
	if err != nil {
		// the receipt was built but the printer failed; hand it back anyway
		if receipt != nil {
			response.OK(c, gin.H{
				"printed": false,
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"printed": true,
		"receipt": receipt,
	})
}
