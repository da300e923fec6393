package mappers

import (
	"github.com/iota-uz/pharma-admin/modules/inventory/domain/stock"
	"github.com/iota-uz/pharma-admin/modules/inventory/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/mapping"
)

func InventoryToViewModel(currency string, assetURL func(string) string) func(stock.Record) viewmodels.InventoryRecord {
	return func(r stock.Record) viewmodels.InventoryRecord {
		report := ""
		if r.Report != "" {
			report = assetURL(r.Report)
		}
		return viewmodels.InventoryRecord{
			ID:          r.ID.String(),
			ProductName: r.ProductName,
			SKU:         r.SKU,
			Category:    r.Category,
			BatchNumber: r.BatchNumber,
			Quantity:    r.Quantity,
			UnitPrice:   mapping.Money(r.UnitPrice, currency),
			StockValue:  mapping.Money(r.Value(), currency),
			ExpiryDate:  mapping.Date(r.ExpiryDate),
			LowStock:    r.LowStock(),
			ReportURL:   report,
			Status:      mapping.Published(r.Status),
		}
	}
}
