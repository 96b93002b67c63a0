package static

import (
	"clockstore-backend/internal/domain"
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

//go:embed catalog.json
var catalogJSON []byte

type productRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewProductRepository loads the embedded catalog.
func NewProductRepository() (domain.ProductRepository, error) {
	return NewProductRepositoryFromJSON(catalogJSON)
}

// NewProductRepositoryFromJSON loads a catalog from a JSON array of products.
// Duplicate ids, unknown categories and negative prices are rejected.
func NewProductRepositoryFromJSON(data []byte) (domain.ProductRepository, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if !slices.Contains(domain.Categories, p.Category) {
			return nil, fmt.Errorf("product %q has unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price", p.ID)
		}
		byID[p.ID] = i
	}

	return &productRepository{products: products, byID: byID}, nil
}

// List returns a copy so callers can never reorder the catalog.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
