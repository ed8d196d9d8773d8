package httpadapter

import (
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"comparee/internal/core/domain"
)

const cronTokenHeader = "x-gsc-cron-token"

type gscSyncRequest struct {
	Limit    *int                `json:"limit"`
	DryRun   *bool               `json:"dryRun"`
	Priority domain.SyncPriority `json:"priority"`
	URLs     []string            `json:"urls"`
}

type gscSyncError struct {
	Success   bool                 `json:"success"`
	ErrorCode domain.SyncErrorCode `json:"errorCode"`
	Error     string               `json:"error"`
}

type gscSyncResponse struct {
	Success bool `json:"success"`
	*domain.SyncReport
}

var syncErrorStatus = map[domain.SyncErrorCode]int{
	domain.SyncForbidden:          http.StatusForbidden,
	domain.SyncDisabled:           http.StatusServiceUnavailable,
	domain.SyncNotConfigured:      http.StatusServiceUnavailable,
	domain.SyncBadRequest:         http.StatusBadRequest,
	domain.SyncAlreadyRunning:     http.StatusConflict,
	domain.SyncSitemapUnavailable: http.StatusBadGateway,
	domain.SyncNoCandidates:       http.StatusUnprocessableEntity,
}

// handleGSCSync runs one Search Console index status sync. It is called by
// a scheduler holding the cron token. An empty body runs a dry run with the
// defaults.
func (h *Handler) handleGSCSync(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(cronTokenHeader)
	if h.opts.CronToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.opts.CronToken)) != 1 {
		h.syncError(w, domain.NewSyncError(domain.SyncForbidden, "invalid cron token"))
		return
	}

	var body gscSyncRequest
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.syncError(w, domain.NewSyncError(domain.SyncBadRequest, "invalid JSON body"))
		return
	}
	req := domain.SyncRequest{
		Limit:    domain.DefaultSyncLimit,
		DryRun:   true,
		Priority: domain.PriorityNotIndexedFirst,
		URLs:     body.URLs,
	}
	if body.Limit != nil {
		req.Limit = *body.Limit
	}
	if body.DryRun != nil {
		req.DryRun = *body.DryRun
	}
	if body.Priority != "" {
		req.Priority = body.Priority
	}

	report, err := h.svc.GSCSync.Run(r.Context(), req)
	var syncErr *domain.SyncError
	switch {
	case errors.As(err, &syncErr):
		h.syncError(w, syncErr)
	case err != nil:
		h.logger.ErrorContext(r.Context(), "gsc sync error", slog.Any("error", err))
		h.fail(w, http.StatusInternalServerError, "internal error", "")
	default:
		h.writeJSON(w, http.StatusOK, gscSyncResponse{Success: true, SyncReport: report})
	}
}

func (h *Handler) syncError(w http.ResponseWriter, e *domain.SyncError) {
	status, ok := syncErrorStatus[e.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, gscSyncError{ErrorCode: e.Code, Error: e.Message})
}
