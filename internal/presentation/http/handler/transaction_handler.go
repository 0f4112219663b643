package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/presentation/http/dto/request"
	"github.com/sangkips/posledger/internal/presentation/http/dto/response"
	"github.com/sangkips/posledger/pkg/apperror"
)

// TransactionHandler handles transaction registration and receipt lookup
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Register handles POST /api/transactions
func (h *TransactionHandler) Register(c *gin.Context) {
	req, err := request.DecodeRegisterTransaction(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, fieldErrors := req.Validate()
	if len(fieldErrors) > 0 {
		response.Error(c, apperror.NewValidationError(fieldErrors))
		return
	}

	txn, err := h.transactionService.Register(c.Request.Context(), toRegisterInput(input))
	if err != nil {
		if !apperror.IsAppError(err) {
			log.Printf("[%s] register failed: %v", GetRequestID(c), err)
		}
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"transaction_id": txn.TransactionID,
		"totals":         response.NewTotals(txn),
	})
}

// GetReceipt handles GET /api/receipt?date=YYYY-MM-DD&receipt_no=...
func (h *TransactionHandler) GetReceipt(c *gin.Context) {
	var query request.ReceiptLookup
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := query.Normalize(); err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.transactionService.GetReceipt(c.Request.Context(), query.Date, query.ReceiptNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	if receipt == nil {
		response.NotFound(c)
		return
	}

	response.OK(c, gin.H{"receipt": receipt})
}
