package restapi

import (
	"github.com/iota-uz/pharma-admin/modules/inventory/domain/stock"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const InventoryResource = "inventory"

func NewInventoryResource(c *restclient.Client) *restclient.Resource[stock.Record] {
	return restclient.NewResource[stock.Record](c, InventoryResource)
}
