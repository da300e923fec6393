package controllers

import (
	"strconv"

	"github.com/iota-uz/pharma-admin/modules/business/domain/brandinfo"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

const (
	BrandInfoRoute     = "/business/brand"
	BrandInfoFormRoute = "/business/brand/form"
)

type BrandInfoScreen = crud.Binding[brandinfo.BrandInfo, dtos.BrandInfoForm, bool, viewmodels.BrandInfo]

func NewBrandInfoScreen(app application.Application, svc *crud.Service[brandinfo.BrandInfo]) *BrandInfoScreen {
	assetURL := app.Client().AssetURL
	return &BrandInfoScreen{
		Key:      "brand-info",
		Label:    "Brand info",
		ListPath: BrandInfoRoute,
		Form: &crud.FormConfig[brandinfo.BrandInfo, dtos.BrandInfoForm]{
			Resource:   "Brand info",
			ListRoute:  BrandInfoRoute,
			Store:      svc,
			FromRecord: dtos.BrandInfoFormFrom,
			Files: []upload.FieldSpec{
				{Field: "assets", Label: "Brand assets", Accept: upload.Images, MaxSize: 2 * upload.MiB, Multiple: true},
			},
			Assets: func(b brandinfo.BrandInfo) map[string]string {
				if len(b.Assets) == 0 {
					return nil
				}
				return map[string]string{"assets": b.Assets[0]}
			},
			AssetURL: assetURL,
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		Lister: crud.ListConfig[brandinfo.BrandInfo, bool, viewmodels.BrandInfo]{
			Resource:  "Brand info",
			FormRoute: BrandInfoFormRoute,
			Store:     svc,
			Access: crud.Accessor[brandinfo.BrandInfo, bool]{
				ID:         brandinfo.BrandInfo.Key,
				Status:     func(b brandinfo.BrandInfo) bool { return b.Status },
				WithStatus: brandinfo.BrandInfo.WithStatus,
			},
			ToView:  mappers.BrandInfoToViewModel(assetURL),
			Search:  func(b brandinfo.BrandInfo) []string { return []string{b.BrandName, b.Tagline} },
			Surface: app.Surface(),
			Logger:  app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize: func(rows []brandinfo.BrandInfo) crud.Summary {
			assets := 0
			for _, b := range rows {
				assets += len(b.Assets)
			}
			return crud.Summary{Stats: []crud.Stat{
				{Label: "Published", Value: strconv.Itoa(crud.Count(rows, func(b brandinfo.BrandInfo) bool { return b.Status }))},
				{Label: "Assets", Value: strconv.Itoa(assets)},
			}}
		},
	}
}
