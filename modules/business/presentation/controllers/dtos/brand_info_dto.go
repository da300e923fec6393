package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/business/domain/brandinfo"
)

type BrandInfoForm struct {
	BrandName   string `json:"brand_name" validate:"required,min=2,max=80"`
	Tagline     string `json:"tagline" validate:"max=120"`
	Description string `json:"description" validate:"max=2000"`
	Website     string `json:"website" validate:"omitempty,http_url"`
	Status      bool   `json:"status"`
}

func (f *BrandInfoForm) Normalize() {
	f.BrandName = strings.TrimSpace(f.BrandName)
	f.Tagline = strings.TrimSpace(f.Tagline)
	f.Description = strings.TrimSpace(f.Description)
	f.Website = strings.TrimSpace(f.Website)
}

func BrandInfoFormFrom(b brandinfo.BrandInfo) BrandInfoForm {
	return BrandInfoForm{
		BrandName:   b.BrandName,
		Tagline:     b.Tagline,
		Description: b.Description,
		Website:     b.Website,
		Status:      b.Status,
	}
}
