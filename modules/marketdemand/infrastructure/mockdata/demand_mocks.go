// Package mockdata declares the marketdemand collections on the development
// backend and seeds them.
package mockdata

import (
	"net/http"

	"github.com/iota-uz/pharma-admin/modules/marketdemand/domain/demand"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

func RegisterMocks(b *mockapi.Backend, seed bool) {
	mockapi.Register(b, restapi.MarketDemandResource, mockapi.CollectionOptions[demand.MarketDemand]{
		Label: "Market demand",
		Validate: func(m demand.MarketDemand) error {
			if m.Status == "" {
				return nil
			}
			if _, err := demand.ParseStatus(string(m.Status)); err != nil {
				return &mockapi.Reject{Status: http.StatusUnprocessableEntity, Message: "Invalid status", Detail: err.Error()}
			}
			return nil
		},
	})
	if !seed {
		return
	}
	b.Seed(restapi.MarketDemandResource,
		mockapi.Record{
			"requester_name": "Farhan Ali", "business_name": "Ali Medicals", "city": "Hubballi", "phone": "+91 98450 11223",
			"products": []map[string]any{
				{"product_name": "Insulin glargine 100IU", "quantity": 40, "unit": "units"},
				{"product_name": "Metformin 500mg", "quantity": 120, "unit": "strips"},
			},
			"notes": "Monthly requirement", "status": "pending",
		},
		mockapi.Record{
			"requester_name": "Kavya S", "business_name": "Sri Sai Pharma", "city": "Mysuru", "phone": "+91 98451 44556",
			"products": []map[string]any{{"product_name": "ORS sachets", "quantity": 60, "unit": "packs"}},
			"notes":    "", "status": "fulfilled",
		},
	)
}
