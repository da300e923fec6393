package controllers

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/marketdemand/domain/demand"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
)

const (
	MarketDemandsRoute    = "/market-demands"
	MarketDemandFormRoute = "/market-demands/form"
)

type MarketDemandScreen = crud.Binding[demand.MarketDemand, dtos.MarketDemandForm, demand.Status, viewmodels.MarketDemand]

func NewMarketDemandScreen(app application.Application, svc *crud.Service[demand.MarketDemand]) *MarketDemandScreen {
	statuses := make([]string, len(demand.Statuses))
	for i, s := range demand.Statuses {
		statuses[i] = string(s)
	}
	return &MarketDemandScreen{
		Key:      "market-demands",
		Label:    "Market demand",
		ListPath: MarketDemandsRoute,
		Form: &crud.FormConfig[demand.MarketDemand, dtos.MarketDemandForm]{
			Resource:   "Market demand",
			ListRoute:  MarketDemandsRoute,
			Store:      svc,
			FromRecord: dtos.MarketDemandFormFrom,
			Labels:     map[string]string{"RequesterName": "Requester", "BusinessName": "Business"},
			Surface:    app.Surface(),
			Logger:     app.Logger(),
		},
		Lister: crud.ListConfig[demand.MarketDemand, demand.Status, viewmodels.MarketDemand]{
			Resource:  "Market demand",
			FormRoute: MarketDemandFormRoute,
			Store:     svc,
			Access: crud.Accessor[demand.MarketDemand, demand.Status]{
				ID:         demand.MarketDemand.Key,
				Status:     func(m demand.MarketDemand) demand.Status { return m.Status },
				WithStatus: demand.MarketDemand.WithStatus,
			},
			ToView: mappers.MarketDemandToViewModel,
			Search: func(m demand.MarketDemand) []string {
				fields := []string{m.RequesterName, m.BusinessName, m.City}
				for _, p := range m.Products {
					fields = append(fields, p.ProductName)
				}
				return fields
			},
			Category: func(m demand.MarketDemand) string { return m.Status.Label() },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: demand.ParseStatus,
		Statuses:    statuses,
		Summarize:   summarizeDemand,
	}
}

func summarizeDemand(rows []demand.MarketDemand) crud.Summary {
	return crud.Summary{
		Stats: []crud.Stat{
			{Label: "Open", Value: strconv.Itoa(crud.Count(rows, func(m demand.MarketDemand) bool { return m.Status != demand.Fulfilled }))},
			{Label: "Requested quantity", Value: crud.Sum(rows, quantity).String()},
		},
		Series: []crud.Series{
			{Name: "Requests by status", Points: crud.GroupCount(rows, func(m demand.MarketDemand) string { return m.Status.Label() })},
			{Name: "Quantity by city", Points: crud.GroupSum(rows, func(m demand.MarketDemand) string { return m.City }, quantity)},
		},
	}
}

func quantity(m demand.MarketDemand) decimal.Decimal {
	return decimal.NewFromInt(int64(m.TotalQuantity()))
}
