package budget

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid budget input")

const (
	FieldBasePrice   = "basePrice"
	FieldMonths      = "months"
	FieldExtrasTotal = "extrasTotal"
)

// InvalidInputError reports which input field broke the calculator contract.
// It matches ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s=%v", ErrInvalidInput, e.Field, e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

type Input struct {
	BasePrice   float64
	Months      float64
	ExtrasTotal float64
}

type Result struct {
	SubTotal       float64
	DiscountRate   float64
	DiscountAmount float64
	Total          float64
}

// Tier maps every duration of at least MinMonths to Rate.
type Tier struct {
	MinMonths float64
	Rate      float64
}

// DiscountTiers are ordered from the highest threshold down. Durations below the
// last threshold get no discount.
var DiscountTiers = []Tier{
	{MinMonths: 12, Rate: 0.15},
	{MinMonths: 6, Rate: 0.10},
	{MinMonths: 3, Rate: 0.05},
}

// DiscountRateForMonths never fails: zero, negative and non-finite durations yield 0.
func DiscountRateForMonths(months float64) float64 {
	if !isFinite(months) || months <= 0 {
		return 0
	}
	for _, tier := range DiscountTiers {
		if months >= tier.MinMonths {
			return tier.Rate
		}
	}
	return 0
}

func ComputeBudget(in Input) (Result, error) {
	if !isFinite(in.BasePrice) || in.BasePrice < 0 {
		return Result{}, &InvalidInputError{Field: FieldBasePrice, Value: in.BasePrice}
	}
	if !isFinite(in.Months) || in.Months <= 0 {
		return Result{}, &InvalidInputError{Field: FieldMonths, Value: in.Months}
	}
	if !isFinite(in.ExtrasTotal) || in.ExtrasTotal < 0 {
		return Result{}, &InvalidInputError{Field: FieldExtrasTotal, Value: in.ExtrasTotal}
	}

	subTotal := in.BasePrice + in.ExtrasTotal
	rate := DiscountRateForMonths(in.Months)
	discount := subTotal * rate

	return Result{
		SubTotal:       subTotal,
		DiscountRate:   rate,
		DiscountAmount: discount,
		Total:          math.Max(0, subTotal-discount),
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
