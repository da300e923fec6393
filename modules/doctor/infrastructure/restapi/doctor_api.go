package restapi

import (
	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const DoctorResource = "doctor"

func NewDoctorResource(c *restclient.Client) *restclient.Resource[doctor.Doctor] {
	return restclient.NewResource[doctor.Doctor](c, DoctorResource)
}
