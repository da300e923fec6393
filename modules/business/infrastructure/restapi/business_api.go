package restapi

import (
	"github.com/iota-uz/pharma-admin/modules/business/domain/brandinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/businessinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/contact"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const (
	BusinessInfoResource    = "business-info"
	BrandInfoResource       = "brand-info"
	BusinessContactResource = "business-contact"
)

func NewBusinessInfoResource(c *restclient.Client) *restclient.Resource[businessinfo.BusinessInfo] {
	return restclient.NewResource[businessinfo.BusinessInfo](c, BusinessInfoResource)
}

func NewBrandInfoResource(c *restclient.Client) *restclient.Resource[brandinfo.BrandInfo] {
	return restclient.NewResource[brandinfo.BrandInfo](c, BrandInfoResource)
}

func NewBusinessContactResource(c *restclient.Client) *restclient.Resource[contact.BusinessContact] {
	return restclient.NewResource[contact.BusinessContact](c, BusinessContactResource)
}
