package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"comparee/internal/core/domain"
)

func (h *Handler) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, size := domain.DefaultPage, domain.DefaultPageSize
	if p := intParam(q, "page"); p != nil {
		page = *p
	}
	if s := intParam(q, "pageSize"); s != nil {
		size = *s
	}
	f := domain.CompanyFilter{
		Status: domain.CompanyStatus(strings.ToLower(strings.TrimSpace(q.Get("status")))),
		Search: strings.TrimSpace(q.Get("search")),
		Page:   domain.NormalizePage(page, size),
	}

	list, total, err := h.svc.Companies.List(r.Context(), f)
	if err != nil {
		h.failErr(w, r, "list companies", err)
		return
	}
	if list == nil {
		list = []domain.CompanyOverview{}
	}
	h.writeJSON(w, http.StatusOK, envelope{Success: true, Data: list, Pagination: newPagination(f.Page, total)})
}

type companyActionRequest struct {
	CompanyID int64  `json:"companyId"`
	Action    string `json:"action"`
}

func (h *Handler) handleCompanyAction(w http.ResponseWriter, r *http.Request) {
	var req companyActionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	if req.CompanyID <= 0 {
		h.fail(w, http.StatusBadRequest, "companyId is required", "")
		return
	}
	action, ok := domain.ParseCompanyAction(strings.ToLower(req.Action))
	if !ok {
		h.fail(w, http.StatusBadRequest, "unknown action "+strconv.Quote(req.Action), "")
		return
	}

	evt, err := h.svc.Companies.Apply(r.Context(), req.CompanyID, action)
	if err != nil {
		h.failErr(w, r, "company action", err)
		return
	}
	h.ok(w, http.StatusOK, evt)
}

type updateCompanyRequest struct {
	CompanyID int64 `json:"companyId"`
	domain.CompanyUpdate
}

func (h *Handler) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req updateCompanyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	if req.CompanyID <= 0 {
		h.fail(w, http.StatusBadRequest, "companyId is required", "")
		return
	}

	c, err := h.svc.Companies.Update(r.Context(), req.CompanyID, req.CompanyUpdate)
	if err != nil {
		h.failErr(w, r, "update company", err)
		return
	}
	h.ok(w, http.StatusOK, c)
}

// handleDeleteCompany removes a company that never went live. The reason a
// company cannot be deleted is returned with HTTP 409.
func (h *Handler) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		h.fail(w, http.StatusBadRequest, "invalid id", "")
		return
	}

	if err = h.svc.Companies.Delete(r.Context(), id); err != nil {
		h.failErr(w, r, "delete company", err)
		return
	}
	h.ok(w, http.StatusOK, map[string]int64{"deletedId": id})
}
