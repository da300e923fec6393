package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/agent/domain/agent"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

type VillageRow struct {
	Name string `json:"name" validate:"required,max=60"`
	Area string `json:"area" validate:"max=60"`
}

type AgentForm struct {
	Name     string                `json:"name" validate:"required,min=2,max=80"`
	Phone    string                `json:"phone" validate:"required,phone"`
	Email    string                `json:"email" validate:"omitempty,email"`
	Region   string                `json:"region" validate:"required,max=60"`
	Villages crud.Rows[VillageRow] `json:"villages" validate:"dive"`
	Areas    crud.Rows[string]     `json:"areas" validate:"dive,required,max=60"`
	Status   bool                  `json:"status"`
}

func (f *AgentForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Region = strings.TrimSpace(f.Region)
	for i := range f.Villages {
		f.Villages[i].Name = strings.TrimSpace(f.Villages[i].Name)
		f.Villages[i].Area = strings.TrimSpace(f.Villages[i].Area)
	}
	for i, a := range f.Areas {
		f.Areas[i] = strings.TrimSpace(a)
	}
}

// CrossCheck rejects a village listed twice.
func (f *AgentForm) CrossCheck() serrors.ValidationErrors {
	errs := serrors.ValidationErrors{}
	seen := map[string]bool{}
	for i, v := range f.Villages {
		key := strings.ToLower(v.Name)
		if key == "" {
			continue
		}
		if seen[key] {
			errs.Add(serrors.RowField("Villages", i, "Name"), v.Name+" is listed more than once")
		}
		seen[key] = true
	}
	return errs
}

func AgentFormFrom(a agent.Agent) AgentForm {
	f := AgentForm{
		Name:   a.Name,
		Phone:  a.Phone,
		Email:  a.Email,
		Region: a.Region,
		Areas:  append(crud.Rows[string](nil), a.Areas...),
		Status: a.Status,
	}
	for _, v := range a.Villages {
		f.Villages.Add(VillageRow{Name: v.Name, Area: v.Area})
	}
	return f
}
