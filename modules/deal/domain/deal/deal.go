package deal

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/discount"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

// Applicability narrows what a deal applies to.
type Applicability struct {
	AppliesTo string `json:"applies_to"`
	Reference string `json:"reference"`
}

// Condition is an extra requirement such as a minimum order value.
type Condition struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type Deal struct {
	ID              restclient.ID   `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DiscountType    discount.Type   `json:"discount_type"`
	DiscountValue   decimal.Decimal `json:"discount_value"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Applicabilities []Applicability `json:"applicabilities"`
	Conditions      []Condition     `json:"conditions"`
	Banner          string          `json:"banner"`
	Status          bool            `json:"status"`
}

func (d Deal) Validate() error {
	if d.ID.IsZero() {
		return errors.New("deal record has no id")
	}
	return nil
}

func (d Deal) Key() string { return d.ID.String() }

func (d Deal) WithStatus(status bool) Deal {
	d.Status = status
	return d
}
