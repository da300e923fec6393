// Package contact holds enquiries sent through the storefront contact form.
// They are created by customers, so the console only lists, resolves and
// deletes them.
package contact

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

var ErrUnknownStatus = errors.New("status must be resolved or open")

type BusinessContact struct {
	ID        restclient.ID `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	CreatedAt string        `json:"created_at"`
	// Status is true once the enquiry has been resolved.
	Status bool `json:"status"`
}

func (c BusinessContact) Validate() error {
	if c.ID.IsZero() {
		return errors.New("business contact record has no id")
	}
	return nil
}

func (c BusinessContact) Key() string { return c.ID.String() }

func (c BusinessContact) WithStatus(status bool) BusinessContact {
	c.Status = status
	return c
}

var Statuses = []string{"resolved", "open"}

func ParseStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resolved", "resolve", "true", "yes", "1":
		return true, nil
	case "open", "reopen", "false", "no", "0":
		return false, nil
	}
	return false, ErrUnknownStatus
}

func StatusLabel(resolved bool) string {
	if resolved {
		return "Resolved"
	}
	return "Open"
}
