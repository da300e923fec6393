package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/business/domain/businessinfo"
)

type BusinessInfoForm struct {
	BusinessName  string `json:"business_name" validate:"required,min=2,max=120"`
	OwnerName     string `json:"owner_name" validate:"required,max=80"`
	LicenseNumber string `json:"license_number" validate:"required,max=40"`
	GSTNumber     string `json:"gst_number" validate:"required,gstin"`
	Address       string `json:"address" validate:"required,max=240"`
	City          string `json:"city" validate:"required,max=60"`
	Phone         string `json:"phone" validate:"required,phone"`
	Email         string `json:"email" validate:"required,email"`
	Status        bool   `json:"status"`
}

func (f *BusinessInfoForm) Normalize() {
	f.BusinessName = strings.TrimSpace(f.BusinessName)
	f.OwnerName = strings.TrimSpace(f.OwnerName)
	f.LicenseNumber = strings.ToUpper(strings.TrimSpace(f.LicenseNumber))
	f.GSTNumber = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(f.GSTNumber), " ", ""))
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
}

func BusinessInfoFormFrom(b businessinfo.BusinessInfo) BusinessInfoForm {
	return BusinessInfoForm{
		BusinessName:  b.BusinessName,
		OwnerName:     b.OwnerName,
		LicenseNumber: b.LicenseNumber,
		GSTNumber:     b.GSTNumber,
		Address:       b.Address,
		City:          b.City,
		Phone:         b.Phone,
		Email:         b.Email,
		Status:        b.Status,
	}
}
