package constants

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	phoneRe      = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,14}$`)
	gstinRe      = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	couponCodeRe = regexp.MustCompile(`^[A-Z0-9_-]{4,20}$`)
)

// Validate is the shared validator instance with the console's custom tags:
//
//	date        a date ParseDate understands
//	decimal     a decimal amount
//	phone       digits with optional leading + and separators
//	gstin       Indian GST identification number
//	couponcode  upper-case code, 4..20 chars
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "gstin", func(fl validator.FieldLevel) bool {
		return gstinRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "couponcode", func(fl validator.FieldLevel) bool {
		return couponCodeRe.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
