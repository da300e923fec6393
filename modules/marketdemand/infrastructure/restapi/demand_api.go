package restapi

import (
	"github.com/iota-uz/pharma-admin/modules/marketdemand/domain/demand"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const MarketDemandResource = "market-demand"

func NewMarketDemandResource(c *restclient.Client) *restclient.Resource[demand.MarketDemand] {
	return restclient.NewResource[demand.MarketDemand](c, MarketDemandResource)
}
