package brandinfo

import (
	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type BrandInfo struct {
	ID          restclient.ID `json:"id"`
	BrandName   string        `json:"brand_name"`
	Tagline     string        `json:"tagline"`
	Description string        `json:"description"`
	Website     string        `json:"website"`
	Assets      []string      `json:"assets"`
	Status      bool          `json:"status"`
}

func (b BrandInfo) Validate() error {
	if b.ID.IsZero() {
		return errors.New("brand info record has no id")
	}
	return nil
}

func (b BrandInfo) Key() string { return b.ID.String() }

func (b BrandInfo) WithStatus(status bool) BrandInfo {
	b.Status = status
	return b
}
