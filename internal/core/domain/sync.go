package domain

import "fmt"

// SyncPriority orders candidate URLs of a sync run.
type SyncPriority string

const (
	PriorityNotIndexedFirst SyncPriority = "not_indexed_first"
	PriorityAll             SyncPriority = "all"
)

const (
	// MaxSyncLimit bounds both a single run and the daily inspection budget.
	MaxSyncLimit     = 1500
	DefaultSyncLimit = 100
)

// SyncRequest is the input of one Search Console sync run.
type SyncRequest struct {
	Limit    int
	DryRun   bool
	Priority SyncPriority
	// URLs overrides the candidate source when non-empty.
	URLs []string
}

// Validate checks the bounds of the request.
func (r SyncRequest) Validate() error {
	if r.Limit < 1 || r.Limit > MaxSyncLimit {
		return NewSyncError(SyncBadRequest, fmt.Sprintf("limit must be between 1 and %d", MaxSyncLimit))
	}
	if r.Priority != PriorityNotIndexedFirst && r.Priority != PriorityAll {
		return NewSyncError(SyncBadRequest, fmt.Sprintf("unknown priority %q", r.Priority))
	}
	return nil
}

// SyncReport summarises a sync run.
type SyncReport struct {
	DryRun         bool                        `json:"dryRun"`
	Candidates     int                         `json:"candidates"`
	EffectiveLimit int                         `json:"effectiveLimit"`
	QuotaRemaining int                         `json:"quotaRemaining"`
	Processed      int                         `json:"processed"`
	Succeeded      int                         `json:"succeeded"`
	Failed         int                         `json:"failed"`
	// StoreErrors counts successful inspections whose result could not be
	// saved. They are neither succeeded nor failed.
	StoreErrors    int                         `json:"storeErrors,omitempty"`
	ErrorTypes     map[InspectionErrorType]int `json:"errorTypes"`
	ElapsedMs      int64                       `json:"elapsedMs"`
	Hint           string                      `json:"hint,omitempty"`
}

// PermissionHint is reported when every failure of a run was a permission
// error, which almost always means the service account is not a verified
// owner of the property.
const PermissionHint = "All inspections failed with PERMISSION_DENIED: add the service account " +
	"e-mail as an owner of the Search Console property and check GSC_SITE_URL."

// SyncErrorCode identifies why a sync run did not start.
type SyncErrorCode string

const (
	SyncForbidden          SyncErrorCode = "forbidden"
	SyncDisabled           SyncErrorCode = "disabled"
	SyncNotConfigured      SyncErrorCode = "not_configured"
	SyncAlreadyRunning     SyncErrorCode = "already_running"
	SyncBadRequest         SyncErrorCode = "bad_request"
	SyncSitemapUnavailable SyncErrorCode = "sitemap_unavailable"
	SyncNoCandidates       SyncErrorCode = "no_candidates"
)

// SyncError is a soft failure reported to the caller as a structured
// payload instead of a server error.
type SyncError struct {
	Code    SyncErrorCode
	Message string
}

func NewSyncError(code SyncErrorCode, msg string) *SyncError {
	return &SyncError{Code: code, Message: msg}
}

func (e *SyncError) Error() string {
	return string(e.Code) + ": " + e.Message
}
