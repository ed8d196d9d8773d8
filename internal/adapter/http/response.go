package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

type pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func newPagination(p domain.Page, total int64) *pagination {
	pages := domain.ListingPage{Page: p, Total: total}.TotalPages()
	return &pagination{Page: p.Number, PageSize: p.Size, Total: total, TotalPages: pages}
}

type envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    string      `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) ok(w http.ResponseWriter, status int, data any) {
	h.writeJSON(w, status, envelope{Success: true, Data: data})
}

func (h *Handler) fail(w http.ResponseWriter, status int, msg, details string) {
	h.writeJSON(w, status, envelope{Error: msg, Details: details})
}

// failErr maps err onto a status code. Server errors are logged and their
// message is not exposed.
func (h *Handler) failErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), op+" error", slog.Any("error", err))
		h.fail(w, status, "internal error", "")
		return
	}
	h.fail(w, status, err.Error(), "")
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, port.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrInvalidTransition), errors.Is(err, port.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, port.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
