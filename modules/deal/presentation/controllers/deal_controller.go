package controllers

import (
	"strconv"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/deal"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

const (
	DealsRoute    = "/deals"
	DealFormRoute = "/deals/form"
)

type DealScreen = crud.Binding[deal.Deal, dtos.DealForm, bool, viewmodels.Deal]

func NewDealScreen(app application.Application, svc *crud.Service[deal.Deal]) *DealScreen {
	assetURL := app.Client().AssetURL
	return &DealScreen{
		Key:      "deals",
		Label:    "Deals",
		ListPath: DealsRoute,
		Form: &crud.FormConfig[deal.Deal, dtos.DealForm]{
			Resource:   "Deal",
			ListRoute:  DealsRoute,
			Store:      svc,
			FromRecord: dtos.DealFormFrom,
			Files: []upload.FieldSpec{
				{Field: "banner", Label: "Banner", Accept: upload.Images, MaxSize: 2 * upload.MiB},
			},
			Assets:   func(d deal.Deal) map[string]string { return map[string]string{"banner": d.Banner} },
			AssetURL: assetURL,
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		Lister: crud.ListConfig[deal.Deal, bool, viewmodels.Deal]{
			Resource:  "Deal",
			FormRoute: DealFormRoute,
			Store:     svc,
			Access: crud.Accessor[deal.Deal, bool]{
				ID:         deal.Deal.Key,
				Status:     func(d deal.Deal) bool { return d.Status },
				WithStatus: deal.Deal.WithStatus,
			},
			ToView:   mappers.DealToViewModel(app.Config().Currency, assetURL),
			Search:   func(d deal.Deal) []string { return []string{d.Title, d.Description} },
			Category: func(d deal.Deal) string { return string(d.DiscountType) },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize: func(rows []deal.Deal) crud.Summary {
			return crud.Summary{
				Stats: []crud.Stat{
					{Label: "Published", Value: strconv.Itoa(crud.Count(rows, func(d deal.Deal) bool { return d.Status }))},
				},
				Series: []crud.Series{
					{Name: "By discount type", Points: crud.GroupCount(rows, func(d deal.Deal) string { return string(d.DiscountType) })},
				},
			}
		},
	}
}
