package budget

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Unavailable is shown in place of amounts the calculator could not produce.
const Unavailable = "—"

var locale = language.MustParse("es-ES")

// FormatEUR renders an amount as Spanish euro currency, rounded to cents, e.g. "180,00 €".
func FormatEUR(amount float64) string {
	cents := decimal.NewFromFloat(amount).Round(2)
	p := message.NewPrinter(locale)
	return p.Sprintf("%v €", number.Decimal(cents.InexactFloat64(), number.Scale(2)))
}

type Formatted struct {
	SubTotal string
	Discount string
	Total    string
}

// Quote is a computed budget together with its display strings.
type Quote struct {
	Input     Input
	Result    Result
	Formatted Formatted
	Available bool
}

func NewQuote(in Input, res Result) Quote {
	return Quote{
		Input:  in,
		Result: res,
		Formatted: Formatted{
			SubTotal: FormatEUR(res.SubTotal),
			Discount: FormatEUR(res.DiscountAmount),
			Total:    FormatEUR(res.Total),
		},
		Available: true,
	}
}

func UnavailableQuote(in Input) Quote {
	return Quote{
		Input:     in,
		Formatted: Formatted{SubTotal: Unavailable, Discount: Unavailable, Total: Unavailable},
	}
}
