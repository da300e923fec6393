package businessinfo

import (
	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type BusinessInfo struct {
	ID              restclient.ID `json:"id"`
	BusinessName    string        `json:"business_name"`
	OwnerName       string        `json:"owner_name"`
	LicenseNumber   string        `json:"license_number"`
	GSTNumber       string        `json:"gst_number"`
	Address         string        `json:"address"`
	City            string        `json:"city"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	Logo            string        `json:"logo"`
	LicenseDocument string        `json:"license_document"`
	Status          bool          `json:"status"`
}

func (b BusinessInfo) Validate() error {
	if b.ID.IsZero() {
		return errors.New("business info record has no id")
	}
	return nil
}

func (b BusinessInfo) Key() string { return b.ID.String() }

func (b BusinessInfo) WithStatus(status bool) BusinessInfo {
	b.Status = status
	return b
}
