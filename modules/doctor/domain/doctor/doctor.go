package doctor

import (
	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type Doctor struct {
	ID              restclient.ID `json:"id"`
	Name            string        `json:"name"`
	HospitalClinic  string        `json:"hospital_clinic"`
	Specialization  string        `json:"specialization"`
	Qualification   string        `json:"qualification"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	City            string        `json:"city"`
	ExperienceYears int           `json:"experience_years"`
	Designations    []string      `json:"designations"`
	Photo           string        `json:"photo"`
	Status          bool          `json:"status"`
}

// Validate is applied to every record the API returns.
func (d Doctor) Validate() error {
	if d.ID.IsZero() {
		return errors.New("doctor record has no id")
	}
	return nil
}

func (d Doctor) Key() string { return d.ID.String() }

func (d Doctor) WithStatus(status bool) Doctor {
	d.Status = status
	return d
}
