package usecase

import (
	"clockstore-backend/internal/domain"
	"context"
	"fmt"
)

const (
	schemaContext = "https://schema.org"
	schemaInStock = "https://schema.org/InStock"
)

type SchemaBrand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type SchemaOffer struct {
	Type          string  `json:"@type"`
	PriceCurrency string  `json:"priceCurrency"`
	Price         float64 `json:"price"`
	Availability  string  `json:"availability"`
}

type SchemaAggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

type SchemaProduct struct {
	Type            string                `json:"@type"`
	Name            string                `json:"name"`
	Image           string                `json:"image"`
	URL             string                `json:"url"`
	Brand           SchemaBrand           `json:"brand"`
	Category        string                `json:"category"`
	Offers          SchemaOffer           `json:"offers"`
	AggregateRating SchemaAggregateRating `json:"aggregateRating"`
}

type SchemaListItem struct {
	Type     string        `json:"@type"`
	Position int           `json:"position"`
	Item     SchemaProduct `json:"item"`
}

// ItemList is a schema.org ItemList document.
type ItemList struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []SchemaListItem `json:"itemListElement"`
}

type StructuredDataUsecase struct {
	catalog *CatalogUsecase
	baseURL string
}

func NewStructuredDataUsecase(catalog *CatalogUsecase, baseURL string) *StructuredDataUsecase {
	return &StructuredDataUsecase{
		catalog: catalog,
		baseURL: baseURL,
	}
}

// ItemList describes every product matching filter, ignoring pagination.
func (u *StructuredDataUsecase) ItemList(ctx context.Context, sessionID string, filter domain.ProductFilter) (*ItemList, error) {
	products, err := u.catalog.filtered(ctx, sessionID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	list := &ItemList{
		Context:         schemaContext,
		Type:            "ItemList",
		ItemListElement: make([]SchemaListItem, 0, len(products)),
	}
	for i, p := range products {
		list.ItemListElement = append(list.ItemListElement, SchemaListItem{
			Type:     "ListItem",
			Position: i + 1,
			Item:     u.product(p),
		})
	}
	return list, nil
}

func (u *StructuredDataUsecase) product(p domain.Product) SchemaProduct {
	r := domain.RatingFor(p)
	return SchemaProduct{
		Type:     "Product",
		Name:     p.Name,
		Image:    domain.ImageForProduct(p),
		URL:      fmt.Sprintf("%s#p-%s", u.baseURL, p.ID),
		Brand:    SchemaBrand{Type: "Brand", Name: p.Brand},
		Category: p.Category,
		Offers: SchemaOffer{
			Type:          "Offer",
			PriceCurrency: domain.Currency,
			Price:         p.Price,
			Availability:  schemaInStock,
		},
		AggregateRating: SchemaAggregateRating{
			Type:        "AggregateRating",
			RatingValue: r.Rating,
			ReviewCount: r.Count,
		},
	}
}
