// Package mockdata declares the inventory collections on the development
// backend and seeds them.
package mockdata

import (
	"fmt"
	"net/http"

	"github.com/iota-uz/pharma-admin/modules/inventory/domain/stock"
	"github.com/iota-uz/pharma-admin/modules/inventory/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

func RegisterMocks(b *mockapi.Backend, seed bool) {
	mockapi.Register(b, restapi.InventoryResource, mockapi.CollectionOptions[stock.Record]{
		Label:  "Inventory record",
		Unique: []string{"sku"},
		Validate: func(r stock.Record) error {
			if r.Quantity < 0 {
				return &mockapi.Reject{Status: http.StatusUnprocessableEntity, Message: "Quantity cannot be negative"}
			}
			return nil
		},
	})
	if !seed {
		return
	}
	records := []mockapi.Record{
		{"product_name": "Paracetamol 650mg", "sku": "PCM-650", "category": "Analgesics", "batch_number": "B2401", "quantity": 400, "unit_price": "1.80", "reorder_level": 100, "expiry_date": "2027-06-30", "status": true},
		{"product_name": "Amoxicillin 500mg", "sku": "AMX-500", "category": "Antibiotics", "batch_number": "B2402", "quantity": 40, "unit_price": "6.25", "reorder_level": 50, "expiry_date": "2027-01-31", "status": true},
		{"product_name": "Cetirizine 10mg", "sku": "CTZ-10", "category": "Antihistamines", "batch_number": "B2403", "quantity": 150, "unit_price": "0.90", "reorder_level": 60, "expiry_date": "2026-11-10", "status": true},
	}
	for i := 1; i <= 9; i++ {
		records = append(records, mockapi.Record{
			"product_name": fmt.Sprintf("Multivitamin syrup %d", i), "sku": fmt.Sprintf("MVS-%03d", i), "category": "Supplements",
			"batch_number": fmt.Sprintf("S25%02d", i), "quantity": 20 * i, "unit_price": "85.00", "reorder_level": 30,
			"expiry_date": "2027-12-31", "status": i%3 != 0,
		})
	}
	b.Seed(restapi.InventoryResource, records...)
}
