package httpadapter

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

// handleListProducts returns one ranked page of active products. Malformed
// paging values fall back to their defaults. Any failure produces HTTP 500
// without a partial result.
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.ListingRequest{
		Page:           intParam(q, "page"),
		PageSize:       intParam(q, "pageSize"),
		Categories:     splitList(q.Get("categories")),
		Category:       q.Get("category"),
		CategorySlug:   strings.TrimSpace(q.Get("categorySlug")),
		IDs:            idList(q.Get("ids")),
		TagsOnly:       boolParam(q, "tagsOnly"),
		CategoriesOnly: boolParam(q, "categoriesOnly"),
		ForHomepage:    boolParam(q, "forHomepage"),
	}
	if s := q.Get("seed"); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			req.Seed = &seed
		}
	}

	page, err := h.svc.Listings.ListProducts(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "list products error", slog.Any("error", err))
		h.fail(w, http.StatusInternalServerError, "Failed to fetch products", err.Error())
		return
	}
	items := page.Items
	if items == nil {
		items = []domain.Listing{}
	}
	h.writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       items,
		Pagination: newPagination(page.Page, page.Total),
	})
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req port.CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	p, err := h.svc.Listings.CreateProduct(r.Context(), req)
	if err != nil {
		h.failErr(w, r, "create product", err)
		return
	}
	h.ok(w, http.StatusCreated, p)
}

// intParam returns nil when the parameter is absent or not an integer.
func intParam(q url.Values, key string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return nil
	}
	return &n
}

func boolParam(q url.Values, key string) bool {
	b, _ := strconv.ParseBool(q.Get(key))
	return b
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// idList parses a comma separated id list, skipping entries that are not
// positive integers.
func idList(s string) []int64 {
	var ids []int64
	for _, part := range splitList(s) {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
