package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// IndexStatus is the last known Search Console inspection result of a URL.
type IndexStatus struct {
	URL             string     `json:"url"`
	Verdict         string     `json:"verdict"`
	CoverageState   string     `json:"coverageState"`
	IndexingState   string     `json:"indexingState"`
	PageFetchState  string     `json:"pageFetchState"`
	GoogleCanonical string     `json:"googleCanonical"`
	UserCanonical   string     `json:"userCanonical"`
	LastCrawlTime   *time.Time `json:"lastCrawlTime,omitempty"`
	ErrorType       string     `json:"errorType,omitempty"`
	ErrorMessage    string     `json:"errorMessage,omitempty"`
	CheckedAt       time.Time  `json:"checkedAt"`
}

// VerdictPass is the Search Console verdict of an indexed URL.
const VerdictPass = "PASS"

// StaleAfter is the age after which a status is re-checked with priority.
const StaleAfter = 48 * time.Hour

// Indexed reports whether the last successful inspection passed.
func (s IndexStatus) Indexed() bool {
	return s.Verdict == VerdictPass
}

// CanonicalMismatch reports whether Google picked a different canonical
// than the page declares.
func (s IndexStatus) CanonicalMismatch() bool {
	return s.GoogleCanonical != "" && s.UserCanonical != "" && s.GoogleCanonical != s.UserCanonical
}

// Priority tiers for the not_indexed_first ordering. Lower runs first.
const (
	TierNotIndexed = iota
	TierCanonicalMismatch
	TierStale
	TierRest
)

// PriorityTier places a candidate URL into a sync tier. A URL that was never
// checked counts as stale. A row holding only a failed inspection has no
// verdict and is judged by age alone.
func PriorityTier(s *IndexStatus, now time.Time) int {
	if s == nil {
		return TierStale
	}
	if s.Verdict != "" && !s.Indexed() {
		return TierNotIndexed
	}
	if s.CanonicalMismatch() {
		return TierCanonicalMismatch
	}
	if now.Sub(s.CheckedAt) > StaleAfter {
		return TierStale
	}
	return TierRest
}

// InspectionErrorType classifies a failed URL inspection.
type InspectionErrorType string

const (
	ErrPermissionDenied  InspectionErrorType = "PERMISSION_DENIED"
	ErrInvalidArgument   InspectionErrorType = "INVALID_ARGUMENT"
	ErrNotFound          InspectionErrorType = "NOT_FOUND"
	ErrResourceExhausted InspectionErrorType = "RESOURCE_EXHAUSTED"
	ErrRateLimit         InspectionErrorType = "RATE_LIMIT"
	ErrServerError       InspectionErrorType = "SERVER_ERROR"
	ErrTimeout           InspectionErrorType = "TIMEOUT"
	ErrUnknown           InspectionErrorType = "UNKNOWN"
)

// Retryable reports whether an inspection failing with t is retried once.
func (t InspectionErrorType) Retryable() bool {
	return t == ErrRateLimit || t == ErrServerError
}

var inspectionErrorPatterns = []struct {
	typ     InspectionErrorType
	needles []string
}{
	{ErrPermissionDenied, []string{"permission_denied", "permission denied", "error 403", "status 403", "forbidden"}},
	{ErrInvalidArgument, []string{"invalid_argument", "invalid argument", "error 400", "status 400", "bad request"}},
	{ErrNotFound, []string{"not_found", "not found", "error 404", "status 404"}},
	{ErrRateLimit, []string{"error 429", "status 429", "too many requests", "rate limit", "ratelimitexceeded"}},
	{ErrResourceExhausted, []string{"resource_exhausted", "resource exhausted", "quota"}},
	{ErrServerError, []string{"error 500", "error 502", "error 503", "error 504", "status 500", "status 502",
		"status 503", "status 504", "internal error", "backend error", "unavailable"}},
	{ErrTimeout, []string{"timeout", "timed out", "deadline exceeded", "etimedout", "aborted"}},
}

// ClassifyInspectionError maps err to an InspectionErrorType by matching
// well known substrings of its message. Context deadlines are TIMEOUT.
func ClassifyInspectionError(err error) InspectionErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	msg := strings.ToLower(err.Error())
	for _, p := range inspectionErrorPatterns {
		for _, n := range p.needles {
			if strings.Contains(msg, n) {
				return p.typ
			}
		}
	}
	return ErrUnknown
}
