package mappers

import (
	"github.com/iota-uz/pharma-admin/modules/business/domain/brandinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/businessinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/contact"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/mapping"
)

func assetLink(assetURL func(string) string, path string) string {
	if path == "" {
		return ""
	}
	return assetURL(path)
}

func BusinessInfoToViewModel(assetURL func(string) string) func(businessinfo.BusinessInfo) viewmodels.BusinessInfo {
	return func(b businessinfo.BusinessInfo) viewmodels.BusinessInfo {
		return viewmodels.BusinessInfo{
			ID:           b.ID.String(),
			BusinessName: b.BusinessName,
			OwnerName:    b.OwnerName,
			GSTNumber:    b.GSTNumber,
			City:         b.City,
			Phone:        b.Phone,
			LogoURL:      assetLink(assetURL, b.Logo),
			LicenseURL:   assetLink(assetURL, b.LicenseDocument),
			Status:       mapping.Published(b.Status),
		}
	}
}

func BrandInfoToViewModel(assetURL func(string) string) func(brandinfo.BrandInfo) viewmodels.BrandInfo {
	return func(b brandinfo.BrandInfo) viewmodels.BrandInfo {
		urls := make([]string, 0, len(b.Assets))
		for _, p := range b.Assets {
			if p != "" {
				urls = append(urls, assetURL(p))
			}
		}
		return viewmodels.BrandInfo{
			ID:        b.ID.String(),
			BrandName: b.BrandName,
			Tagline:   b.Tagline,
			Website:   b.Website,
			AssetURLs: urls,
			Assets:    len(urls),
			Status:    mapping.Published(b.Status),
		}
	}
}

func ContactToViewModel(c contact.BusinessContact) viewmodels.BusinessContact {
	return viewmodels.BusinessContact{
		ID:       c.ID.String(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Subject:  c.Subject,
		Received: mapping.Date(c.CreatedAt),
		Status:   contact.StatusLabel(c.Status),
	}
}
