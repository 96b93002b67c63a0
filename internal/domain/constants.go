package domain

// Categories
const (
	CategoryMasculino = "masculino"
	CategoryFeminino  = "feminino"
	CategoryEsportivo = "esportivo"
	CategoryClassico  = "clássico"
)

// Sort Keys
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// Session State Keys
const (
	StateKeyCart          = "clockstore_cart_v1"
	StateKeyLastOrder     = "clockstore_last_order_v1"
	StateKeySubscriptions = "clockstore_subs_v1"
	StateKeyCoupon        = "clockstore_coupon_v1"
	StateKeyWishlist      = "clockstore_wishlist"
	StateKeyPageSize      = "clockstore_page_size"
)

// Pricing
const (
	// FreeShippingThreshold is shared by the pricing engine and the catalog's
	// free-shipping filter. Compared against the post-discount subtotal.
	FreeShippingThreshold = 300.0
	FlatShippingFee       = 19.9
	InstallmentCount      = 6
	Currency              = "BRL"
)

const DefaultPageSize = 12

// PageSizeOptions are the page sizes offered by the listing controls.
var PageSizeOptions = []int{8, 12, 24, 48}

// List Exports for API
var Categories = []string{
	CategoryMasculino,
	CategoryFeminino,
	CategoryEsportivo,
	CategoryClassico,
}

var SortKeys = []string{
	SortPriceAsc,
	SortPriceDesc,
	SortNameAsc,
	SortNameDesc,
}

// categoryImages overrides product images per category.
var categoryImages = map[string]string{
	CategoryMasculino: "assets/imgs/relogio.png",
	CategoryFeminino:  "assets/imgs/relogio.png",
	CategoryEsportivo: "assets/imgs/relogio.png",
	CategoryClassico:  "assets/imgs/relogio.png",
}

// ImageForProduct resolves the image shown for p, preferring the category image.
func ImageForProduct(p Product) string {
	if img, ok := categoryImages[p.Category]; ok {
		return img
	}
	return p.Image
}
