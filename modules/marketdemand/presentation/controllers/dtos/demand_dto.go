package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/marketdemand/domain/demand"
	"github.com/iota-uz/pharma-admin/pkg/crud"
)

type ProductRow struct {
	ProductName string `json:"product_name" validate:"required,max=120"`
	Quantity    int    `json:"quantity" validate:"gte=1,lte=100000"`
	Unit        string `json:"unit" validate:"required,oneof=strips bottles boxes units packs"`
}

type MarketDemandForm struct {
	RequesterName string                `json:"requester_name" validate:"required,max=80"`
	BusinessName  string                `json:"business_name" validate:"required,max=120"`
	City          string                `json:"city" validate:"required,max=60"`
	Phone         string                `json:"phone" validate:"required,phone"`
	Products      crud.Rows[ProductRow] `json:"products" validate:"min=1,dive"`
	Notes         string                `json:"notes" validate:"max=1000"`
	Status        demand.Status         `json:"status" validate:"required,oneof=pending in_progress fulfilled"`
}

func (f *MarketDemandForm) Normalize() {
	f.RequesterName = strings.TrimSpace(f.RequesterName)
	f.BusinessName = strings.TrimSpace(f.BusinessName)
	f.City = strings.TrimSpace(f.City)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Notes = strings.TrimSpace(f.Notes)
	for i := range f.Products {
		f.Products[i].ProductName = strings.TrimSpace(f.Products[i].ProductName)
		f.Products[i].Unit = strings.ToLower(strings.TrimSpace(f.Products[i].Unit))
	}
	if f.Status == "" {
		f.Status = demand.Pending
	} else if st, err := demand.ParseStatus(string(f.Status)); err == nil {
		f.Status = st
	}
}

func MarketDemandFormFrom(m demand.MarketDemand) MarketDemandForm {
	f := MarketDemandForm{
		RequesterName: m.RequesterName,
		BusinessName:  m.BusinessName,
		City:          m.City,
		Phone:         m.Phone,
		Notes:         m.Notes,
		Status:        m.Status,
	}
	for _, p := range m.Products {
		f.Products.Add(ProductRow{ProductName: p.ProductName, Quantity: p.Quantity, Unit: p.Unit})
	}
	return f
}
