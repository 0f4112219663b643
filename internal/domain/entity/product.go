package entity

import (
	"time"

	"github.com/sangkips/posledger/internal/domain/enum"
)

// Product is a reference-data row looked up by the register before a sale.
type Product struct {
	ProductCode     string       `gorm:"column:product_code;primaryKey;size:13" json:"product_code"`
	ProductCategory string       `gorm:"column:product_category;size:100" json:"product_category"`
	ProductName     string       `gorm:"column:product_name;size:255;not null" json:"product_name"`
	PosCost         *int64       `gorm:"column:pos_cost" json:"pos_cost"`
	PriceExcl       int64        `gorm:"column:price_excl;not null" json:"price_excl"`
	TaxRate         enum.TaxRate `gorm:"column:tax_rate;not null" json:"tax_rate"`
	UpdatedAtUTC    time.Time    `gorm:"column:updated_at_utc" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
