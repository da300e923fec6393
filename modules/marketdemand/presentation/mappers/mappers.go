package mappers

import (
	"fmt"
	"strings"

	"github.com/iota-uz/pharma-admin/modules/marketdemand/domain/demand"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/presentation/viewmodels"
)

func MarketDemandToViewModel(m demand.MarketDemand) viewmodels.MarketDemand {
	products := make([]string, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, fmt.Sprintf("%s x%d %s", p.ProductName, p.Quantity, p.Unit))
	}
	return viewmodels.MarketDemand{
		ID:            m.ID.String(),
		RequesterName: m.RequesterName,
		BusinessName:  m.BusinessName,
		City:          m.City,
		Products:      strings.Join(products, "; "),
		TotalQuantity: m.TotalQuantity(),
		Status:        m.Status.Label(),
	}
}
