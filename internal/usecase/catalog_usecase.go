package usecase

import (
	"clockstore-backend/config"
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/cache"
	"context"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// CatalogEnums lists the values the storefront filters and controls are built from.
type CatalogEnums struct {
	Categories            []string `json:"categories"`
	Brands                []string `json:"brands"`
	Tags                  []string `json:"tags"`
	SortKeys              []string `json:"sortKeys"`
	PageSizes             []int    `json:"pageSizes"`
	DefaultPageSize       int      `json:"defaultPageSize"`
	FreeShippingThreshold float64  `json:"freeShippingThreshold"`
	FlatShippingFee       float64  `json:"flatShippingFee"`
	Installments          int      `json:"installments"`
	Currency              string   `json:"currency"`
}

type CatalogUsecase struct {
	repo  domain.ProductRepository
	state *SessionState
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.ProductRepository, state *SessionState, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		state: state,
		cache: cache,
		cfg:   cfg,
	}
}

// ListProducts filters, sorts and paginates the catalog for one session. A zero
// filter.PageSize falls back to the session's stored preference.
func (u *CatalogUsecase) ListProducts(ctx context.Context, sessionID string, filter domain.ProductFilter) (domain.Page[domain.ProductView], error) {
	if filter.PageSize == 0 {
		size, err := u.GetPageSize(ctx, sessionID)
		if err != nil {
			return domain.Page[domain.ProductView]{}, err
		}
		filter.PageSize = size
	}

	products, err := u.filtered(ctx, sessionID, filter)
	if err != nil {
		return domain.Page[domain.ProductView]{}, err
	}

	page := domain.Paginate(products, filter.Page, filter.PageSize)
	views := make([]domain.ProductView, len(page.Items))
	for i, p := range page.Items {
		views[i] = domain.NewProductView(p)
	}
	return domain.Page[domain.ProductView]{Items: views, Pagination: page.Pagination}, nil
}

// filtered returns the sorted, unpaginated result. Lists that depend on the
// session's wishlist are never cached.
func (u *CatalogUsecase) filtered(ctx context.Context, sessionID string, filter domain.ProductFilter) ([]domain.Product, error) {
	load := func(wishlist map[string]struct{}) ([]domain.Product, error) {
		all, err := u.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return domain.SortProducts(domain.FilterProducts(all, filter, wishlist), filter.Sort), nil
	}

	if filter.FavoritesOnly {
		unlock := u.state.Lock(sessionID)
		w, err := u.state.loadWishlist(ctx, sessionID)
		unlock()
		if err != nil {
			return nil, err
		}
		return load(w.Set())
	}

	key, ok := listCacheKey(filter)
	if !ok {
		return load(nil)
	}
	return cache.Remember(u.cache, key, u.cfg.CacheCatalogTTL, func() ([]domain.Product, error) {
		return load(nil)
	})
}

// listKey holds the normalized filter fields that change a cached listing.
type listKey struct {
	Category     string   `json:"c"`
	Query        string   `json:"q"`
	Brands       []string `json:"b"`
	MinPrice     *float64 `json:"min"`
	MaxPrice     *float64 `json:"max"`
	MinRating    *float64 `json:"r"`
	Tag          string   `json:"t"`
	FreeShipping bool     `json:"fs"`
	Sort         string   `json:"s"`
}

// listCacheKey encodes the filter as JSON so user-supplied separators cannot
// make two different filters share a key. ok is false when the filter cannot
// be encoded and must not be cached.
func listCacheKey(f domain.ProductFilter) (key string, ok bool) {
	brands := make([]string, 0, len(f.Brands))
	for b := range f.Brands {
		brands = append(brands, b)
	}
	slices.Sort(brands)

	raw, err := json.Marshal(listKey{
		Category:     f.Category,
		Query:        strings.ToLower(strings.TrimSpace(f.Query)),
		Brands:       brands,
		MinPrice:     f.MinPrice,
		MaxPrice:     f.MaxPrice,
		MinRating:    f.MinRating,
		Tag:          f.Tag,
		FreeShipping: f.FreeShipping,
		Sort:         f.Sort,
	})
	if err != nil {
		return "", false
	}
	return "catalog:list:" + string(raw), true
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id string) (*domain.ProductView, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := domain.NewProductView(*p)
	return &view, nil
}

func (u *CatalogUsecase) GetEnums(ctx context.Context) (*CatalogEnums, error) {
	return cache.Remember(u.cache, "catalog:enums", u.cfg.CacheEnumsTTL, func() (*CatalogEnums, error) {
		products, err := u.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		var brands, tags []string
		for _, p := range products {
			if !slices.Contains(brands, p.Brand) {
				brands = append(brands, p.Brand)
			}
			if p.Tag != "" && !slices.Contains(tags, p.Tag) {
				tags = append(tags, p.Tag)
			}
		}
		slices.Sort(brands)
		slices.Sort(tags)

		return &CatalogEnums{
			Categories:            domain.Categories,
			Brands:                brands,
			Tags:                  tags,
			SortKeys:              domain.SortKeys,
			PageSizes:             domain.PageSizeOptions,
			DefaultPageSize:       u.cfg.DefaultPageSize,
			FreeShippingThreshold: domain.FreeShippingThreshold,
			FlatShippingFee:       domain.FlatShippingFee,
			Installments:          domain.InstallmentCount,
			Currency:              domain.Currency,
		}, nil
	})
}

// GetPageSize returns the session's page-size preference.
func (u *CatalogUsecase) GetPageSize(ctx context.Context, sessionID string) (int, error) {
	n, err := loadJSON(ctx, u.state, sessionID, domain.StateKeyPageSize, 0)
	if err != nil {
		return 0, err
	}
	return u.normalizePageSize(n), nil
}

// SetPageSize stores the page-size preference and returns the value kept.
func (u *CatalogUsecase) SetPageSize(ctx context.Context, sessionID string, size int) (int, error) {
	size = u.normalizePageSize(size)
	unlock := u.state.Lock(sessionID)
	defer unlock()
	if err := saveJSON(ctx, u.state, sessionID, domain.StateKeyPageSize, size); err != nil {
		return 0, err
	}
	return size, nil
}

// normalizePageSize maps 0 to the default and clamps negatives to 1.
func (u *CatalogUsecase) normalizePageSize(n int) int {
	switch {
	case n == 0:
		return u.cfg.DefaultPageSize
	case n < 0:
		return 1
	}
	return n
}
