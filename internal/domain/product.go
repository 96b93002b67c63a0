package domain

import "context"

type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	OldPrice *float64 `json:"oldPrice,omitempty"`
	Tag      string   `json:"tag,omitempty"`
	Image    string   `json:"image"`
}

// HasOldPrice reports whether the old price should be shown struck through.
func (p Product) HasOldPrice() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// FreeShippingEligible reports whether the product alone clears the free-shipping threshold.
func (p Product) FreeShippingEligible() bool {
	return p.Price >= FreeShippingThreshold
}

// ProductView is a product as rendered by listings and the detail view.
type ProductView struct {
	Product
	Image           string  `json:"image"`
	Rating          Rating  `json:"rating"`
	FreeShipping    bool    `json:"freeShipping"`
	ShowOldPrice    bool    `json:"showOldPrice"`
	Installments    int     `json:"installments"`
	InstallmentPart float64 `json:"installmentValue"`
}

func NewProductView(p Product) ProductView {
	return ProductView{
		Product:         p,
		Image:           ImageForProduct(p),
		Rating:          RatingFor(p),
		FreeShipping:    p.FreeShippingEligible(),
		ShowOldPrice:    p.HasOldPrice(),
		Installments:    InstallmentCount,
		InstallmentPart: roundCents(p.Price / InstallmentCount),
	}
}

// ProductFilter is the transient catalog view state.
type ProductFilter struct {
	Category      string
	Query         string
	FavoritesOnly bool
	Brands        map[string]struct{}
	MinPrice      *float64
	MaxPrice      *float64
	MinRating     *float64
	Tag           string
	FreeShipping  bool
	Sort          string
	Page          int
	PageSize      int
}

// --- Interfaces ---

type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}
