package dtos

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/pkg/constants"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

func validForm() DoctorForm {
	return DoctorForm{
		Name:            "Dr. Asha Menon",
		HospitalClinic:  "City Care Hospital",
		Specialization:  "Cardiology",
		Qualification:   "MBBS, MD",
		Phone:           "+91 98450 11223",
		City:            "Kochi",
		ExperienceYears: 14,
		Designations:    []string{"Senior Consultant"},
	}
}

func TestDoctorForm_Rules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		edit  func(*DoctorForm)
		valid bool
	}{
		{name: "valid", edit: func(*DoctorForm) {}, valid: true},
		{name: "experience upper bound", edit: func(f *DoctorForm) { f.ExperienceYears = 70 }, valid: true},
		{name: "experience too high", edit: func(f *DoctorForm) { f.ExperienceYears = 71 }},
		{name: "negative experience", edit: func(f *DoctorForm) { f.ExperienceYears = -1 }},
		{name: "missing name", edit: func(f *DoctorForm) { f.Name = "" }},
		{name: "bad phone", edit: func(f *DoctorForm) { f.Phone = "call me" }},
		{name: "bad email", edit: func(f *DoctorForm) { f.Email = "asha@" }},
		{name: "blank designation", edit: func(f *DoctorForm) { f.Designations = append(f.Designations, "") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := validForm()
			tc.edit(&f)
			err := constants.Validate.Struct(&f)
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestDoctorForm_NormalizeAndPrefill(t *testing.T) {
	t.Parallel()

	f := DoctorFormFrom(doctor.Doctor{
		ID:           restclient.ID("3"),
		Name:         "  Dr. Vikram Rao ",
		Email:        " Vikram@RaoClinic.in",
		Designations: []string{" Consultant "},
		Photo:        "/media/doctor/3/photo/p.png",
		Status:       true,
	})
	f.Normalize()
	require.Equal(t, "Dr. Vikram Rao", f.Name)
	require.Equal(t, "vikram@raoclinic.in", f.Email)
	require.Equal(t, []string{"Consultant"}, []string(f.Designations))
	require.True(t, f.Status)
}
