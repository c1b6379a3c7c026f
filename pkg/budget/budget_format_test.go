package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0,00 €"},
		{0.5, "0,50 €"},
		{180, "180,00 €"},
		{12.345, "12,35 €"},
		{1234567.5, "1.234.567,50 €"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEUR(tt.amount))
	}
}

func TestNewQuote(t *testing.T) {
	in := Input{BasePrice: 100, Months: 3, ExtrasTotal: 80}
	res, err := ComputeBudget(in)
	assert.NoError(t, err)

	quote := NewQuote(in, res)

	assert.True(t, quote.Available)
	assert.Equal(t, "180,00 €", quote.Formatted.SubTotal)
	assert.Equal(t, "9,00 €", quote.Formatted.Discount)
	assert.Equal(t, "171,00 €", quote.Formatted.Total)
}

func TestUnavailableQuote(t *testing.T) {
	quote := UnavailableQuote(Input{Months: 0})

	assert.False(t, quote.Available)
	assert.Equal(t, Formatted{SubTotal: Unavailable, Discount: Unavailable, Total: Unavailable}, quote.Formatted)
	assert.Equal(t, Result{}, quote.Result)
}
