package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/pkg/crud"
)

type DoctorForm struct {
	Name            string            `json:"name" validate:"required,min=2,max=80"`
	HospitalClinic  string            `json:"hospital_clinic" validate:"required,max=120"`
	Specialization  string            `json:"specialization" validate:"required,max=60"`
	Qualification   string            `json:"qualification" validate:"required,max=80"`
	Phone           string            `json:"phone" validate:"required,phone"`
	Email           string            `json:"email" validate:"omitempty,email"`
	City            string            `json:"city" validate:"required,max=60"`
	ExperienceYears int               `json:"experience_years" validate:"gte=0,lte=70"`
	Designations    crud.Rows[string] `json:"designations" validate:"dive,required,max=60"`
	Status          bool              `json:"status"`
}

func (f *DoctorForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.HospitalClinic = strings.TrimSpace(f.HospitalClinic)
	f.Specialization = strings.TrimSpace(f.Specialization)
	f.Qualification = strings.TrimSpace(f.Qualification)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.City = strings.TrimSpace(f.City)
	for i, d := range f.Designations {
		f.Designations[i] = strings.TrimSpace(d)
	}
}

func DoctorFormFrom(d doctor.Doctor) DoctorForm {
	return DoctorForm{
		Name:            d.Name,
		HospitalClinic:  d.HospitalClinic,
		Specialization:  d.Specialization,
		Qualification:   d.Qualification,
		Phone:           d.Phone,
		Email:           d.Email,
		City:            d.City,
		ExperienceYears: d.ExperienceYears,
		Designations:    append(crud.Rows[string](nil), d.Designations...),
		Status:          d.Status,
	}
}
