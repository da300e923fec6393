package demand

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Fulfilled  Status = "fulfilled"
)

var (
	Statuses         = []Status{Pending, InProgress, Fulfilled}
	ErrUnknownStatus = errors.New("status must be pending, in_progress or fulfilled")
)

// ParseStatus accepts the wire value or its spaced/dashed spelling.
func ParseStatus(s string) (Status, error) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range Statuses {
		if string(st) == norm {
			return st, nil
		}
	}
	return "", ErrUnknownStatus
}

func (s Status) Label() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "In progress"
	case Fulfilled:
		return "Fulfilled"
	}
	return string(s)
}

type Product struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
}

// MarketDemand is a request from a retailer for products the catalogue
// does not stock yet.
type MarketDemand struct {
	ID            restclient.ID `json:"id"`
	RequesterName string        `json:"requester_name"`
	BusinessName  string        `json:"business_name"`
	City          string        `json:"city"`
	Phone         string        `json:"phone"`
	Products      []Product     `json:"products"`
	Notes         string        `json:"notes"`
	Status        Status        `json:"status"`
}

// Validate also rejects status values outside the known set.
func (m MarketDemand) Validate() error {
	if m.ID.IsZero() {
		return errors.New("market demand record has no id")
	}
	if m.Status != "" {
		if _, err := ParseStatus(string(m.Status)); err != nil {
			return errors.Wrapf(err, "market demand %s", m.ID)
		}
	}
	return nil
}

func (m MarketDemand) Key() string { return m.ID.String() }

func (m MarketDemand) WithStatus(status Status) MarketDemand {
	m.Status = status
	return m
}

func (m MarketDemand) TotalQuantity() int {
	n := 0
	for _, p := range m.Products {
		n += p.Quantity
	}
	return n
}
