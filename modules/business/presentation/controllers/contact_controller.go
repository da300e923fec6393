package controllers

import (
	"strconv"

	"github.com/iota-uz/pharma-admin/modules/business/domain/contact"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
)

const ContactsRoute = "/business/contacts"

// ContactScreen has no form: enquiries arrive from the storefront.
type ContactScreen = crud.Binding[contact.BusinessContact, struct{}, bool, viewmodels.BusinessContact]

func NewContactScreen(app application.Application, svc *crud.Service[contact.BusinessContact]) *ContactScreen {
	return &ContactScreen{
		Key:      "business-contacts",
		Label:    "Business contacts",
		ListPath: ContactsRoute,
		Lister: crud.ListConfig[contact.BusinessContact, bool, viewmodels.BusinessContact]{
			Resource: "Business contact",
			Store:    svc,
			Access: crud.Accessor[contact.BusinessContact, bool]{
				ID:         contact.BusinessContact.Key,
				Status:     func(c contact.BusinessContact) bool { return c.Status },
				WithStatus: contact.BusinessContact.WithStatus,
			},
			ToView: mappers.ContactToViewModel,
			Search: func(c contact.BusinessContact) []string {
				return []string{c.Name, c.Email, c.Subject}
			},
			Category: func(c contact.BusinessContact) string { return contact.StatusLabel(c.Status) },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: contact.ParseStatus,
		Statuses:    contact.Statuses,
		Summarize: func(rows []contact.BusinessContact) crud.Summary {
			open := crud.Count(rows, func(c contact.BusinessContact) bool { return !c.Status })
			return crud.Summary{
				Stats: []crud.Stat{
					{Label: "Open", Value: strconv.Itoa(open)},
					{Label: "Resolved", Value: strconv.Itoa(len(rows) - open)},
				},
				Series: []crud.Series{
					{Name: "By subject", Points: crud.GroupCount(rows, func(c contact.BusinessContact) string { return c.Subject })},
				},
			}
		},
	}
}
