package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/deal"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/discount"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

type ApplicabilityRow struct {
	AppliesTo string `json:"applies_to" validate:"required,oneof=all product category brand"`
	Reference string `json:"reference" validate:"max=80"`
}

type ConditionRow struct {
	Kind  string `json:"kind" validate:"required,oneof=min_order_value max_uses_per_customer first_order_only"`
	Value string `json:"value" validate:"max=40"`
}

type DealForm struct {
	Title           string                      `json:"title" validate:"required,min=3,max=120"`
	Description     string                      `json:"description" validate:"max=2000"`
	DiscountType    discount.Type               `json:"discount_type" validate:"required,oneof=percentage flat"`
	DiscountValue   string                      `json:"discount_value" validate:"required,decimal"`
	StartDate       string                      `json:"start_date" validate:"required,date"`
	EndDate         string                      `json:"end_date" validate:"required,date"`
	Applicabilities crud.Rows[ApplicabilityRow] `json:"applicabilities" validate:"dive"`
	Conditions      crud.Rows[ConditionRow]     `json:"conditions" validate:"dive"`
	Status          bool                        `json:"status"`
}

func (f *DealForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DiscountType = discount.Type(strings.ToLower(strings.TrimSpace(string(f.DiscountType))))
	f.DiscountValue = strings.TrimSpace(f.DiscountValue)
	for i := range f.Applicabilities {
		f.Applicabilities[i].AppliesTo = strings.ToLower(strings.TrimSpace(f.Applicabilities[i].AppliesTo))
		f.Applicabilities[i].Reference = strings.TrimSpace(f.Applicabilities[i].Reference)
	}
	for i := range f.Conditions {
		f.Conditions[i].Kind = strings.ToLower(strings.TrimSpace(f.Conditions[i].Kind))
		f.Conditions[i].Value = strings.TrimSpace(f.Conditions[i].Value)
	}
}

func (f *DealForm) CrossCheck() serrors.ValidationErrors {
	errs := discount.Terms{
		Type:      f.DiscountType,
		Value:     f.DiscountValue,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}.Check()
	for i, a := range f.Applicabilities {
		if a.AppliesTo != "all" && a.AppliesTo != "" && a.Reference == "" {
			errs.Add(serrors.RowField("Applicabilities", i, "Reference"), "Reference is required unless the deal applies to all")
		}
	}
	for i, c := range f.Conditions {
		if c.Kind != "first_order_only" && c.Kind != "" && c.Value == "" {
			errs.Add(serrors.RowField("Conditions", i, "Value"), "Value is required for this condition")
		}
	}
	return errs
}

func DealFormFrom(d deal.Deal) DealForm {
	f := DealForm{
		Title:         d.Title,
		Description:   d.Description,
		DiscountType:  d.DiscountType,
		DiscountValue: d.DiscountValue.String(),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Status:        d.Status,
	}
	for _, a := range d.Applicabilities {
		f.Applicabilities.Add(ApplicabilityRow{AppliesTo: a.AppliesTo, Reference: a.Reference})
	}
	for _, c := range d.Conditions {
		f.Conditions.Add(ConditionRow{Kind: c.Kind, Value: c.Value})
	}
	return f
}
