package budget

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrUnknownProduct = errors.New("unknown product")
var ErrUnknownExtra = errors.New("unknown extra")

type Product struct {
	ID    string
	Name  string
	Price float64
}

type Extra struct {
	ID    string
	Name  string
	Price float64
}

type Catalog struct {
	Products []Product
	Extras   []Extra
}

// Selection is what a visitor picks on the budget form.
type Selection struct {
	ProductID string
	Months    float64
	ExtraIDs  []string
}

func (c Catalog) Product(id string) (Product, error) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, id)
}

func (c Catalog) Extra(id string) (Extra, error) {
	for _, e := range c.Extras {
		if e.ID == id {
			return e, nil
		}
	}
	return Extra{}, fmt.Errorf("%w: %q", ErrUnknownExtra, id)
}

// Resolve turns a selection into calculator input. Extras selected more than once
// are counted once.
func (c Catalog) Resolve(sel Selection) (Input, error) {
	product, err := c.Product(sel.ProductID)
	if err != nil {
		return Input{}, err
	}

	seen := make(map[string]struct{}, len(sel.ExtraIDs))
	extrasTotal := decimal.Zero
	for _, id := range sel.ExtraIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		extra, err := c.Extra(id)
		if err != nil {
			return Input{}, err
		}
		extrasTotal = extrasTotal.Add(decimal.NewFromFloat(extra.Price))
	}

	return Input{
		BasePrice:   product.Price,
		Months:      sel.Months,
		ExtrasTotal: extrasTotal.InexactFloat64(),
	}, nil
}
