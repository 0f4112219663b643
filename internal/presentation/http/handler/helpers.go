package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/domain/enum"
	"github.com/sangkips/posledger/internal/presentation/http/dto/request"
)

// GetRequestID extracts the request ID set by the logger middleware
func GetRequestID(c *gin.Context) string {
	id, exists := c.Get("request_id")
	if !exists {
		return ""
	}
	s, _ := id.(string)
	return s
}

// toRegisterInput maps a validated request onto the service input
func toRegisterInput(req *request.RegisterTransaction) *service.RegisterTransactionInput {
	input := &service.RegisterTransactionInput{
		ReceiptNo:    req.ReceiptNo,
		RegisteredAt: req.RegisteredAt,
		CashierName:  req.CashierName,
		Items:        make([]service.RegisterItemInput, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, service.RegisterItemInput{
			ProductCode:     it.ProductCode,
			ProductCategory: it.ProductCategory,
			ProductName:     it.ProductName,
			PosCost:         it.PosCost,
			PriceExcl:       it.PriceExcl,
			Qty:             it.Qty,
			TaxRate:         enum.TaxRate(it.TaxRate),
		})
	}
	return input
}
