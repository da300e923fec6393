package controllers

import (
	"strconv"

	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/modules/doctor/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/doctor/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/doctor/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

const (
	DoctorsRoute    = "/doctors"
	DoctorFormRoute = "/doctors/form"
)

type DoctorScreen = crud.Binding[doctor.Doctor, dtos.DoctorForm, bool, viewmodels.Doctor]

func NewDoctorScreen(app application.Application, svc *crud.Service[doctor.Doctor]) *DoctorScreen {
	assetURL := app.Client().AssetURL
	return &DoctorScreen{
		Key:      "doctors",
		Label:    "Doctors",
		ListPath: DoctorsRoute,
		Form: &crud.FormConfig[doctor.Doctor, dtos.DoctorForm]{
			Resource:   "Doctor",
			ListRoute:  DoctorsRoute,
			Store:      svc,
			FromRecord: dtos.DoctorFormFrom,
			Files: []upload.FieldSpec{
				{Field: "photo", Label: "Photo", Accept: upload.Images, MaxSize: 2 * upload.MiB},
			},
			Assets:   func(d doctor.Doctor) map[string]string { return map[string]string{"photo": d.Photo} },
			AssetURL: assetURL,
			Labels:   map[string]string{"HospitalClinic": "Hospital / clinic"},
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		Lister: crud.ListConfig[doctor.Doctor, bool, viewmodels.Doctor]{
			Resource:  "Doctor",
			FormRoute: DoctorFormRoute,
			Store:     svc,
			Access: crud.Accessor[doctor.Doctor, bool]{
				ID:         doctor.Doctor.Key,
				Status:     func(d doctor.Doctor) bool { return d.Status },
				WithStatus: doctor.Doctor.WithStatus,
			},
			ToView: mappers.DoctorToViewModel(assetURL),
			Search: func(d doctor.Doctor) []string {
				return []string{d.Name, d.HospitalClinic, d.Specialization}
			},
			Category: func(d doctor.Doctor) string { return d.Specialization },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize:   summarizeDoctors,
	}
}

func summarizeDoctors(rows []doctor.Doctor) crud.Summary {
	published := crud.Count(rows, func(d doctor.Doctor) bool { return d.Status })
	return crud.Summary{
		Stats: []crud.Stat{
			{Label: "Published", Value: strconv.Itoa(published)},
			{Label: "Unpublished", Value: strconv.Itoa(len(rows) - published)},
		},
		Series: []crud.Series{
			{Name: "By specialization", Points: crud.GroupCount(rows, func(d doctor.Doctor) string { return d.Specialization })},
		},
	}
}
