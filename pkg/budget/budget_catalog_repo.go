package budget

import (
	"context"

	"github.com/programstile/studio/internal/config"
)

type CatalogRepo interface {
	GetCatalog(ctx context.Context) (Catalog, error)
}

// ConfigCatalogRepo serves the catalog defined in the application configuration.
type ConfigCatalogRepo struct {
	catalog Catalog
}

func NewCatalogRepo(cfg config.Catalog) *ConfigCatalogRepo {
	catalog := Catalog{
		Products: make([]Product, 0, len(cfg.Products)),
		Extras:   make([]Extra, 0, len(cfg.Extras)),
	}
	for _, p := range cfg.Products {
		catalog.Products = append(catalog.Products, Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	for _, e := range cfg.Extras {
		catalog.Extras = append(catalog.Extras, Extra{ID: e.ID, Name: e.Name, Price: e.Price})
	}
	return &ConfigCatalogRepo{catalog: catalog}
}

func (r *ConfigCatalogRepo) GetCatalog(ctx context.Context) (Catalog, error) {
	return r.catalog, nil
}
