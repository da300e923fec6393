// Package mockdata declares the doctor collections on the development
// backend and seeds them.
package mockdata

import (
	"net/http"
	"strings"

	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/modules/doctor/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

// RegisterMocks declares the doctor collection on the development backend.
func RegisterMocks(b *mockapi.Backend, seed bool) {
	mockapi.Register(b, restapi.DoctorResource, mockapi.CollectionOptions[doctor.Doctor]{
		Label:  "Doctor",
		Unique: []string{"email"},
		Validate: func(d doctor.Doctor) error {
			if strings.TrimSpace(d.Name) == "" {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Doctor name is required"}
			}
			if d.ExperienceYears < 0 || d.ExperienceYears > 70 {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Experience must be between 0 and 70 years"}
			}
			return nil
		},
	})
	if !seed {
		return
	}
	b.Seed(restapi.DoctorResource,
		mockapi.Record{
			"name": "Dr. Asha Menon", "hospital_clinic": "City Care Hospital", "specialization": "Cardiology",
			"qualification": "MBBS, MD", "phone": "+91 98450 11223", "email": "asha.menon@citycare.in", "city": "Kochi",
			"experience_years": 14, "designations": []string{"Senior Consultant", "HOD Cardiology"}, "photo": "", "status": true,
		},
		mockapi.Record{
			"name": "Dr. Vikram Rao", "hospital_clinic": "Rao Clinic", "specialization": "Pediatrics",
			"qualification": "MBBS, DCH", "phone": "+91 99001 22334", "email": "vikram@raoclinic.in", "city": "Mysuru",
			"experience_years": 9, "designations": []string{"Consultant"}, "photo": "", "status": false,
		},
		mockapi.Record{
			"name": "Dr. Farah Khan", "hospital_clinic": "Sunrise Multispeciality", "specialization": "Dermatology",
			"qualification": "MBBS, MD", "phone": "+91 90080 55667", "email": "farah.khan@sunrise.in", "city": "Pune",
			"experience_years": 6, "designations": []string{}, "photo": "", "status": true,
		},
	)
}
