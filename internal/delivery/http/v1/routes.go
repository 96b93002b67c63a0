package v1

import "net/http"

// Handlers groups the storefront API handlers for route registration.
type Handlers struct {
	Session    *SessionHandler
	Catalog    *CatalogHandler
	Config     *ConfigHandler
	Cart       *CartHandler
	Order      *OrderHandler
	Wishlist   *WishlistHandler
	Newsletter *NewsletterHandler
	Health     *HealthHandler
}

// Register mounts every route on mux. Routes that read or write session
// state are wrapped with session.
func (h *Handlers) Register(mux *http.ServeMux, session func(http.Handler) http.Handler) {
	withSession := func(fn http.HandlerFunc) http.Handler {
		return session(fn)
	}

	// Health
	mux.HandleFunc("GET /api/v1/health", h.Health.Health)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Session
	mux.HandleFunc("POST /api/v1/session", h.Session.CreateSession)

	// Catalog
	mux.Handle("GET /api/v1/products", withSession(h.Catalog.ListProducts))
	mux.Handle("GET /api/v1/products/structured-data", withSession(h.Catalog.GetStructuredData))
	mux.HandleFunc("GET /api/v1/products/{id}", h.Catalog.GetProduct)
	mux.HandleFunc("GET /api/v1/config/enums", h.Config.GetEnums)
	mux.Handle("GET /api/v1/preferences/page-size", withSession(h.Catalog.GetPageSize))
	mux.Handle("PUT /api/v1/preferences/page-size", withSession(h.Catalog.SetPageSize))

	// Cart
	mux.Handle("GET /api/v1/cart", withSession(h.Cart.GetCart))
	mux.Handle("GET /api/v1/cart/badge", withSession(h.Cart.GetBadge))
	mux.Handle("POST /api/v1/cart", withSession(h.Cart.AddToCart))
	mux.Handle("PUT /api/v1/cart", withSession(h.Cart.UpdateCart))
	mux.Handle("DELETE /api/v1/cart", withSession(h.Cart.ClearCart))
	mux.Handle("DELETE /api/v1/cart/{productId}", withSession(h.Cart.RemoveFromCart))
	mux.Handle("GET /api/v1/cart/coupon", withSession(h.Cart.GetCoupon))
	mux.Handle("POST /api/v1/cart/coupon", withSession(h.Cart.ApplyCoupon))
	mux.Handle("DELETE /api/v1/cart/coupon", withSession(h.Cart.ClearCoupon))

	// Checkout
	mux.Handle("POST /api/v1/checkout", withSession(h.Order.Checkout))
	mux.Handle("GET /api/v1/orders/last", withSession(h.Order.GetLastOrder))

	// Wishlist
	mux.Handle("GET /api/v1/wishlist", withSession(h.Wishlist.GetWishlist))
	mux.Handle("GET /api/v1/wishlist/{productId}", withSession(h.Wishlist.CheckWishlist))
	mux.Handle("POST /api/v1/wishlist/{productId}/toggle", withSession(h.Wishlist.ToggleWishlist))

	// Newsletter
	mux.Handle("GET /api/v1/newsletter", withSession(h.Newsletter.ListSubscriptions))
	mux.Handle("POST /api/v1/newsletter", withSession(h.Newsletter.Subscribe))
}
