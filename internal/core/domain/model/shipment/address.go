// Package shipment contains the carrier shipment record, the parcel
// dimensions, and the shipping address. The address is validated locally
// before any carrier call so an incomplete address never wastes a label
// purchase against the carrier API.
package shipment

import (
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Address is a shipping destination. Every field except Line2 is required
// for a label purchase.
type Address struct {
	Name       string `validate:"required"`
	Line1      string `validate:"required"`
	Line2      string
	City       string `validate:"required"`
	State      string `validate:"required"`
	PostalCode string `validate:"required"`
	Country    string `validate:"required,iso3166_1_alpha2"`
	Phone      string
}

// Validate checks address completeness. Returns a ValueIsInvalidError
// naming the offending fields so the caller can render an actionable
// message.
func (a Address) Validate() error {
	if err := validate.Struct(a); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipping address", err)
	}
	return nil
}

// Parcel is the physical package handed to the carrier: dimensions in
// centimeters and weight in grams.
type Parcel struct {
	LengthCm float64 `validate:"required,gt=0"`
	WidthCm  float64 `validate:"required,gt=0"`
	HeightCm float64 `validate:"required,gt=0"`
	WeightG  float64 `validate:"required,gt=0"`
}

// Validate checks that all dimensions and the weight are positive.
func (p Parcel) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcel", err)
	}
	return nil
}
