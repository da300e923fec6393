// Package mockdata declares the business collections on the development
// backend and seeds them.
package mockdata

import (
	"net/http"
	"strings"

	"github.com/iota-uz/pharma-admin/modules/business/domain/brandinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/businessinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/contact"
	"github.com/iota-uz/pharma-admin/modules/business/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

func RegisterMocks(b *mockapi.Backend, seed bool) {
	mockapi.Register(b, restapi.BusinessInfoResource, mockapi.CollectionOptions[businessinfo.BusinessInfo]{
		Label:  "Business info",
		Unique: []string{"gst_number"},
		Validate: func(bi businessinfo.BusinessInfo) error {
			if strings.TrimSpace(bi.BusinessName) == "" {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Business name is required"}
			}
			return nil
		},
	})
	mockapi.Register(b, restapi.BrandInfoResource, mockapi.CollectionOptions[brandinfo.BrandInfo]{
		Label:    "Brand info",
		Envelope: true,
		Validate: func(bi brandinfo.BrandInfo) error {
			if strings.TrimSpace(bi.BrandName) == "" {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Brand name is required"}
			}
			return nil
		},
	})
	mockapi.Register(b, restapi.BusinessContactResource, mockapi.CollectionOptions[contact.BusinessContact]{
		Label: "Business contact",
	})
	if !seed {
		return
	}
	b.Seed(restapi.BusinessInfoResource, mockapi.Record{
		"business_name": "Sanjeevani Pharma", "owner_name": "Ramesh Iyer", "license_number": "KA-B2-2291",
		"gst_number": "29ABCDE1234F1Z5", "address": "12 MG Road", "city": "Bengaluru",
		"phone": "+91 80 4123 5566", "email": "accounts@sanjeevani.in", "logo": "", "license_document": "",
		"status": true,
	})
	b.Seed(restapi.BrandInfoResource, mockapi.Record{
		"brand_name": "Sanjeevani", "tagline": "Care you can trust", "description": "Retail pharmacy chain.",
		"website": "https://sanjeevani.in", "assets": []string{}, "status": true,
	})
	b.Seed(restapi.BusinessContactResource,
		mockapi.Record{
			"name": "Priya S", "email": "priya@example.com", "phone": "+91 98860 12345",
			"subject": "Bulk order", "message": "Need 200 strips of paracetamol.",
			"created_at": "2024-05-02T09:30:00Z", "status": false,
		},
		mockapi.Record{
			"name": "Arjun K", "email": "arjun@example.com", "phone": "+91 99000 67890",
			"subject": "Franchise enquiry", "message": "Interested in opening a store in Hubli.",
			"created_at": "2024-05-04T14:10:00Z", "status": true,
		},
	)
}
