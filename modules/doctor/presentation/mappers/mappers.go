package mappers

import (
	"fmt"
	"strings"

	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/modules/doctor/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/mapping"
)

func DoctorToViewModel(assetURL func(string) string) func(doctor.Doctor) viewmodels.Doctor {
	return func(d doctor.Doctor) viewmodels.Doctor {
		photo := ""
		if d.Photo != "" {
			photo = assetURL(d.Photo)
		}
		return viewmodels.Doctor{
			ID:             d.ID.String(),
			Name:           d.Name,
			HospitalClinic: d.HospitalClinic,
			Specialization: d.Specialization,
			Phone:          d.Phone,
			City:           d.City,
			Experience:     fmt.Sprintf("%d yrs", d.ExperienceYears),
			Designations:   strings.Join(d.Designations, ", "),
			PhotoURL:       photo,
			Status:         mapping.Published(d.Status),
		}
	}
}
