package budget

import "context"

type StubCatalogRepo struct {
	Catalog Catalog
	Err     error
}

func NewStubCatalogRepo() *StubCatalogRepo {
	return &StubCatalogRepo{Catalog: Catalog{
		Products: []Product{
			{ID: "landing", Name: "Landing page", Price: 450},
			{ID: "corporate", Name: "Web corporativa", Price: 1000},
		},
		Extras: []Extra{
			{ID: "seo", Name: "Posicionamiento SEO", Price: 150},
			{ID: "blog", Name: "Blog integrado", Price: 50},
			{ID: "tenth", Name: "Décima", Price: 0.1},
			{ID: "fifth", Name: "Quinta", Price: 0.2},
		},
	}}
}

func (s *StubCatalogRepo) GetCatalog(ctx context.Context) (Catalog, error) {
	if s.Err != nil {
		return Catalog{}, s.Err
	}
	return s.Catalog, nil
}
