package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/presentation/http/dto/response"
)

// CashierHandler serves the cashier picker list
type CashierHandler struct {
	cashierService *service.CashierService
}

// NewCashierHandler creates a new cashier handler
func NewCashierHandler(cashierService *service.CashierService) *CashierHandler {
	return &CashierHandler{cashierService: cashierService}
}

// List handles GET /api/cashiers
func (h *CashierHandler) List(c *gin.Context) {
	cashiers, err := h.cashierService.ListCashiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"cashiers": cashiers})
}
