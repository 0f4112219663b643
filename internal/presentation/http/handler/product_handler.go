package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/presentation/http/dto/request"
	"github.com/sangkips/posledger/internal/presentation/http/dto/response"
)

// ProductHandler handles product master lookups
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetByCode handles GET /api/products?code=...
func (h *ProductHandler) GetByCode(c *gin.Context) {
	var query request.ProductLookup
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := query.Normalize(); err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productService.GetByCode(c.Request.Context(), query.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"product": product})
}
