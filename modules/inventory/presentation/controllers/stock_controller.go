package controllers

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/inventory/domain/stock"
	"github.com/iota-uz/pharma-admin/modules/inventory/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/inventory/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/inventory/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/mapping"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

const (
	InventoryRoute     = "/inventory"
	InventoryFormRoute = "/inventory/form"

	// ExpiryWindowDays is how far ahead the expiring-soon card looks.
	ExpiryWindowDays = 30
)

type InventoryScreen = crud.Binding[stock.Record, dtos.InventoryForm, bool, viewmodels.InventoryRecord]

func NewInventoryScreen(app application.Application, svc *crud.Service[stock.Record], now func() time.Time) *InventoryScreen {
	if now == nil {
		now = time.Now
	}
	assetURL := app.Client().AssetURL
	currency := app.Config().Currency
	return &InventoryScreen{
		Key:      "inventory",
		Label:    "Inventory",
		ListPath: InventoryRoute,
		Form: &crud.FormConfig[stock.Record, dtos.InventoryForm]{
			Resource:   "Inventory record",
			ListRoute:  InventoryRoute,
			Store:      svc,
			FromRecord: dtos.InventoryFormFrom,
			Files: []upload.FieldSpec{{
				Field:   "report",
				Label:   "Report",
				Accept:  append(append([]string(nil), upload.Documents...), upload.Sheets...),
				MaxSize: 10 * upload.MiB,
			}},
			Assets:   func(r stock.Record) map[string]string { return map[string]string{"report": r.Report} },
			AssetURL: assetURL,
			Labels:   map[string]string{"SKU": "SKU", "ProductName": "Product"},
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		Lister: crud.ListConfig[stock.Record, bool, viewmodels.InventoryRecord]{
			Resource:  "Inventory record",
			FormRoute: InventoryFormRoute,
			Store:     svc,
			Access: crud.Accessor[stock.Record, bool]{
				ID:         stock.Record.Key,
				Status:     func(r stock.Record) bool { return r.Status },
				WithStatus: stock.Record.WithStatus,
			},
			ToView:   mappers.InventoryToViewModel(currency, assetURL),
			PageSize: app.Config().PageSize,
			Search:   func(r stock.Record) []string { return []string{r.ProductName, r.SKU, r.BatchNumber} },
			Category: func(r stock.Record) string { return r.Category },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize:   stockSummary{now: now, currency: currency}.summarize,
	}
}

type stockSummary struct {
	now      func() time.Time
	currency string
}

func (s stockSummary) summarize(rows []stock.Record) crud.Summary {
	now := s.now()
	return crud.Summary{
		Stats: []crud.Stat{
			{Label: "Stock value", Value: mapping.Money(crud.Sum(rows, stock.Record.Value), s.currency)},
			{Label: "Low stock", Value: strconv.Itoa(crud.Count(rows, stock.Record.LowStock))},
			{Label: "Expiring in 30 days", Value: strconv.Itoa(crud.Count(rows, func(r stock.Record) bool {
				return r.ExpiresWithin(now, ExpiryWindowDays)
			}))},
			{Label: "Expired", Value: strconv.Itoa(crud.Count(rows, func(r stock.Record) bool { return r.Expired(now) }))},
		},
		Series: []crud.Series{
			{Name: "Stock value by category", Points: crud.GroupSum(rows,
				func(r stock.Record) string { return r.Category },
				func(r stock.Record) decimal.Decimal { return r.Value() },
			)},
		},
	}
}
