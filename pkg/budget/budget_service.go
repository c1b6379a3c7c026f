package budget

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type BudgetService interface {
	Compute(ctx context.Context, in Input) (Quote, error)
	Estimate(ctx context.Context, sel Selection) (Quote, error)
	DiscountRate(ctx context.Context, months float64) float64
	Catalog(ctx context.Context) (Catalog, error)
}

type BudgetServiceImpl struct {
	repo CatalogRepo
}

func NewBudgetServiceImpl(repo CatalogRepo) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo}
}

// Compute returns an unavailable quote together with the error when the input is rejected,
// so callers can render the neutral state directly.
func (s *BudgetServiceImpl) Compute(ctx context.Context, in Input) (Quote, error) {
	res, err := ComputeBudget(in)
	if err != nil {
		log.Debugf("budget not computed: %v", err)
		return UnavailableQuote(in), err
	}
	return NewQuote(in, res), nil
}

func (s *BudgetServiceImpl) Estimate(ctx context.Context, sel Selection) (Quote, error) {
	catalog, err := s.repo.GetCatalog(ctx)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to get catalog: %w", err)
	}
	in, err := catalog.Resolve(sel)
	if err != nil {
		return UnavailableQuote(Input{Months: sel.Months}), err
	}
	return s.Compute(ctx, in)
}

func (s *BudgetServiceImpl) DiscountRate(ctx context.Context, months float64) float64 {
	return DiscountRateForMonths(months)
}

func (s *BudgetServiceImpl) Catalog(ctx context.Context) (Catalog, error) {
	return s.repo.GetCatalog(ctx)
}
