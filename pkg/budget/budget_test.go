package budget

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRateForMonths(t *testing.T) {
	tests := []struct {
		months float64
		want   float64
	}{
		{36, 0.15},
		{12, 0.15},
		{11, 0.10},
		{6, 0.10},
		{5.9, 0.05},
		{3, 0.05},
		{2, 0},
		{0.5, 0},
		{0, 0},
		{-5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountRateForMonths(tt.months), "months=%v", tt.months)
	}
}

func TestComputeBudget(t *testing.T) {
	t.Run("should apply the yearly discount", func(t *testing.T) {
		// when
		res, err := ComputeBudget(Input{BasePrice: 1000, Months: 12, ExtrasTotal: 200})

		// then
		require.NoError(t, err)
		want := Result{SubTotal: 1200, DiscountRate: 0.15, DiscountAmount: 180, Total: 1020}
		if diff := cmp.Diff(want, res); diff != "" {
			t.Errorf("ComputeBudget() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should not discount short contracts", func(t *testing.T) {
		res, err := ComputeBudget(Input{BasePrice: 450, Months: 1, ExtrasTotal: 0})

		require.NoError(t, err)
		assert.Equal(t, Result{SubTotal: 450, Total: 450}, res)
	})

	t.Run("should accept zero prices", func(t *testing.T) {
		res, err := ComputeBudget(Input{BasePrice: 0, Months: 6, ExtrasTotal: 0})

		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Total)
		assert.Equal(t, 0.10, res.DiscountRate)
	})

	t.Run("should keep the result invariants", func(t *testing.T) {
		inputs := []Input{
			{BasePrice: 450, Months: 3, ExtrasTotal: 270},
			{BasePrice: 2500, Months: 7, ExtrasTotal: 0.1},
			{BasePrice: 1200.5, Months: 24, ExtrasTotal: 770},
		}
		for _, in := range inputs {
			res, err := ComputeBudget(in)
			require.NoError(t, err)
			assert.Equal(t, in.BasePrice+in.ExtrasTotal, res.SubTotal)
			assert.Equal(t, res.SubTotal*res.DiscountRate, res.DiscountAmount)
			assert.Equal(t, math.Max(0, res.SubTotal-res.DiscountAmount), res.Total)
			assert.GreaterOrEqual(t, res.Total, 0.0)
		}
	})

	t.Run("should be deterministic", func(t *testing.T) {
		in := Input{BasePrice: 1234.56, Months: 7, ExtrasTotal: 89.1}

		first, err1 := ComputeBudget(in)
		second, err2 := ComputeBudget(in)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, math.Float64bits(first.Total), math.Float64bits(second.Total))
		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("should never raise the total for longer contracts", func(t *testing.T) {
		previous := math.Inf(1)
		for months := 1.0; months <= 36; months++ {
			res, err := ComputeBudget(Input{BasePrice: 1000, Months: months, ExtrasTotal: 200})
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Total, previous, "months=%v", months)
			previous = res.Total
		}
	})
}

func TestComputeBudget_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantField string
	}{
		{"negative base price", Input{BasePrice: -1, Months: 1, ExtrasTotal: 0}, FieldBasePrice},
		{"NaN base price", Input{BasePrice: math.NaN(), Months: 1, ExtrasTotal: 0}, FieldBasePrice},
		{"infinite base price", Input{BasePrice: math.Inf(1), Months: 1, ExtrasTotal: 0}, FieldBasePrice},
		{"zero months", Input{BasePrice: 100, Months: 0, ExtrasTotal: 0}, FieldMonths},
		{"negative months", Input{BasePrice: 100, Months: -3, ExtrasTotal: 0}, FieldMonths},
		{"NaN months", Input{BasePrice: 100, Months: math.NaN(), ExtrasTotal: 0}, FieldMonths},
		{"negative extras", Input{BasePrice: 100, Months: 1, ExtrasTotal: -0.01}, FieldExtrasTotal},
		{"infinite extras", Input{BasePrice: 100, Months: 1, ExtrasTotal: math.Inf(1)}, FieldExtrasTotal},
		{"first invalid field wins", Input{BasePrice: -1, Months: 0, ExtrasTotal: -1}, FieldBasePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeBudget(tt.in)

			assert.Equal(t, Result{}, res)
			require.ErrorIs(t, err, ErrInvalidInput)
			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.wantField, invalid.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}
