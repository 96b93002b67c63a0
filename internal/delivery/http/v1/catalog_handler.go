package v1

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/utils"
	"net/http"
	"net/url"
	"strings"
)

type CatalogHandler struct {
	catalogUC        *usecase.CatalogUsecase
	structuredDataUC *usecase.StructuredDataUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase, structuredDataUC *usecase.StructuredDataUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc, structuredDataUC: structuredDataUC}
}

// parseProductFilter reads the listing query. Numeric filters that are not
// finite non-negative numbers are ignored; min_rating must also be positive.
func parseProductFilter(query url.Values) domain.ProductFilter {
	filter := domain.ProductFilter{
		Category:      query.Get("category"),
		Query:         query.Get("q"),
		FavoritesOnly: utils.ParseFlag(query.Get("favorites")),
		MinPrice:      utils.ParseNonNegativeFloat(query.Get("min_price")),
		MaxPrice:      utils.ParseNonNegativeFloat(query.Get("max_price")),
		Tag:           strings.TrimSpace(query.Get("tag")),
		FreeShipping:  utils.ParseFlag(query.Get("free_shipping")),
		Page:          utils.ParseInt(query.Get("page"), 1),
		PageSize:      utils.ParseInt(query.Get("page_size"), 0),
	}

	if minRating := utils.ParseNonNegativeFloat(query.Get("min_rating")); minRating != nil && *minRating > 0 {
		filter.MinRating = minRating
	}
	if sort := query.Get("sort"); domain.IsSortKey(sort) {
		filter.Sort = sort
	}
	if brands := utils.SplitList(query["brand"]); len(brands) > 0 {
		filter.Brands = make(map[string]struct{}, len(brands))
		for _, b := range brands {
			filter.Brands[b] = struct{}{}
		}
	}
	return filter
}

// GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	page, err := h.catalogUC.ListProducts(r.Context(), sid, parseProductFilter(r.URL.Query()))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

// GET /api/v1/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUC.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// GET /api/v1/products/structured-data
func (h *CatalogHandler) GetStructuredData(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	list, err := h.structuredDataUC.ItemList(r.Context(), sid, parseProductFilter(r.URL.Query()))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSONAs(w, http.StatusOK, "application/ld+json", list)
}

type pageSizeReq struct {
	PageSize int `json:"pageSize"`
}

// GET /api/v1/preferences/page-size
func (h *CatalogHandler) GetPageSize(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	size, err := h.catalogUC.GetPageSize(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, pageSizeReq{PageSize: size})
}

// PUT /api/v1/preferences/page-size
func (h *CatalogHandler) SetPageSize(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req pageSizeReq
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	size, err := h.catalogUC.SetPageSize(r.Context(), sid, req.PageSize)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, pageSizeReq{PageSize: size})
}
