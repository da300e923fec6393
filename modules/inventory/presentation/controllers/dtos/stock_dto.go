package dtos

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/inventory/domain/stock"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

type InventoryForm struct {
	ProductName  string `json:"product_name" validate:"required,max=120"`
	SKU          string `json:"sku" validate:"required,max=40"`
	Category     string `json:"category" validate:"required,max=60"`
	BatchNumber  string `json:"batch_number" validate:"required,max=40"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	UnitPrice    string `json:"unit_price" validate:"required,decimal"`
	ReorderLevel int    `json:"reorder_level" validate:"gte=0"`
	ExpiryDate   string `json:"expiry_date" validate:"required,date"`
	Status       bool   `json:"status"`
}

func (f *InventoryForm) Normalize() {
	f.ProductName = strings.TrimSpace(f.ProductName)
	f.SKU = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(f.SKU), " ", "-"))
	f.Category = strings.TrimSpace(f.Category)
	f.BatchNumber = strings.ToUpper(strings.TrimSpace(f.BatchNumber))
	f.UnitPrice = strings.TrimSpace(f.UnitPrice)
	f.ExpiryDate = strings.TrimSpace(f.ExpiryDate)
}

// CrossCheck rejects a price that parses but is not positive.
func (f *InventoryForm) CrossCheck() serrors.ValidationErrors {
	errs := serrors.ValidationErrors{}
	if p, err := decimal.NewFromString(f.UnitPrice); err == nil && !p.IsPositive() {
		errs.Add("UnitPrice", "Unit price must be greater than 0")
	}
	return errs
}

func InventoryFormFrom(r stock.Record) InventoryForm {
	return InventoryForm{
		ProductName:  r.ProductName,
		SKU:          r.SKU,
		Category:     r.Category,
		BatchNumber:  r.BatchNumber,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice.String(),
		ReorderLevel: r.ReorderLevel,
		ExpiryDate:   r.ExpiryDate,
		Status:       r.Status,
	}
}
