package budget

import (
	"context"
	"testing"

	"github.com/programstile/studio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewStubCatalogRepo().Catalog

	t.Run("should resolve product and extras", func(t *testing.T) {
		in, err := catalog.Resolve(Selection{ProductID: "corporate", Months: 12, ExtraIDs: []string{"seo", "blog"}})

		require.NoError(t, err)
		assert.Equal(t, Input{BasePrice: 1000, Months: 12, ExtrasTotal: 200}, in)
	})

	t.Run("should sum extras exactly", func(t *testing.T) {
		in, err := catalog.Resolve(Selection{ProductID: "landing", Months: 1, ExtraIDs: []string{"tenth", "fifth"}})

		require.NoError(t, err)
		assert.Equal(t, 0.3, in.ExtrasTotal)
	})

	t.Run("should count a repeated extra once", func(t *testing.T) {
		in, err := catalog.Resolve(Selection{ProductID: "landing", Months: 1, ExtraIDs: []string{"seo", "seo"}})

		require.NoError(t, err)
		assert.Equal(t, 150.0, in.ExtrasTotal)
	})

	t.Run("should resolve without extras", func(t *testing.T) {
		in, err := catalog.Resolve(Selection{ProductID: "landing", Months: 2})

		require.NoError(t, err)
		assert.Equal(t, Input{BasePrice: 450, Months: 2}, in)
	})

	t.Run("should reject unknown product", func(t *testing.T) {
		_, err := catalog.Resolve(Selection{ProductID: "rocket", Months: 1})

		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("should reject unknown extra", func(t *testing.T) {
		_, err := catalog.Resolve(Selection{ProductID: "landing", Months: 1, ExtraIDs: []string{"seo", "hosting"}})

		assert.ErrorIs(t, err, ErrUnknownExtra)
		assert.Contains(t, err.Error(), "hosting")
	})
}

func TestNewCatalogRepo(t *testing.T) {
	repo := NewCatalogRepo(config.Defaults().Catalog)

	catalog, err := repo.GetCatalog(context.Background())

	require.NoError(t, err)
	assert.Len(t, catalog.Products, 3)
	assert.Len(t, catalog.Extras, 4)
	product, err := catalog.Product("corporate")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, product.Price)
}
