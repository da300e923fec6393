package controllers

import (
	"strconv"

	"github.com/iota-uz/pharma-admin/modules/business/domain/businessinfo"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

const (
	BusinessInfoRoute     = "/business/info"
	BusinessInfoFormRoute = "/business/info/form"
)

type BusinessInfoScreen = crud.Binding[businessinfo.BusinessInfo, dtos.BusinessInfoForm, bool, viewmodels.BusinessInfo]

func NewBusinessInfoScreen(app application.Application, svc *crud.Service[businessinfo.BusinessInfo]) *BusinessInfoScreen {
	assetURL := app.Client().AssetURL
	return &BusinessInfoScreen{
		Key:      "business-info",
		Label:    "Business info",
		ListPath: BusinessInfoRoute,
		Form: &crud.FormConfig[businessinfo.BusinessInfo, dtos.BusinessInfoForm]{
			Resource:   "Business info",
			ListRoute:  BusinessInfoRoute,
			Store:      svc,
			FromRecord: dtos.BusinessInfoFormFrom,
			Files: []upload.FieldSpec{
				{Field: "logo", Label: "Logo", Accept: upload.Images, MaxSize: 2 * upload.MiB},
				{Field: "license_document", Label: "License document", Accept: upload.Documents, MaxSize: 5 * upload.MiB},
			},
			Assets: func(b businessinfo.BusinessInfo) map[string]string {
				return map[string]string{"logo": b.Logo, "license_document": b.LicenseDocument}
			},
			AssetURL: assetURL,
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		Lister: crud.ListConfig[businessinfo.BusinessInfo, bool, viewmodels.BusinessInfo]{
			Resource:  "Business info",
			FormRoute: BusinessInfoFormRoute,
			Store:     svc,
			Access: crud.Accessor[businessinfo.BusinessInfo, bool]{
				ID:         businessinfo.BusinessInfo.Key,
				Status:     func(b businessinfo.BusinessInfo) bool { return b.Status },
				WithStatus: businessinfo.BusinessInfo.WithStatus,
			},
			ToView: mappers.BusinessInfoToViewModel(assetURL),
			Search: func(b businessinfo.BusinessInfo) []string {
				return []string{b.BusinessName, b.OwnerName, b.GSTNumber}
			},
			Category: func(b businessinfo.BusinessInfo) string { return b.City },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize: func(rows []businessinfo.BusinessInfo) crud.Summary {
			licensed := crud.Count(rows, func(b businessinfo.BusinessInfo) bool { return b.LicenseDocument != "" })
			return crud.Summary{
				Stats: []crud.Stat{
					{Label: "Published", Value: strconv.Itoa(crud.Count(rows, func(b businessinfo.BusinessInfo) bool { return b.Status }))},
					{Label: "License on file", Value: strconv.Itoa(licensed)},
				},
				Series: []crud.Series{
					{Name: "By city", Points: crud.GroupCount(rows, func(b businessinfo.BusinessInfo) string { return b.City })},
				},
			}
		},
	}
}
