package gsc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"comparee/internal/core/domain"
)

func newTestInspector(t *testing.T, h http.HandlerFunc) *Inspector {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	insp, err := newInspector(context.Background(), "sc-domain:comparee.ai",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return insp
}

func TestInspector_MapsIndexStatus(t *testing.T) {
	insp := newTestInspector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/urlInspection/index:inspect", r.URL.Path)

		var body struct {
			InspectionURL string `json:"inspectionUrl"`
			SiteURL       string `json:"siteUrl"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://comparee.ai/landing/crm", body.InspectionURL)
		assert.Equal(t, "sc-domain:comparee.ai", body.SiteURL)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"inspectionResult":{"indexStatusResult":{
			"verdict":"PASS",
			"coverageState":"Submitted and indexed",
			"indexingState":"INDEXING_ALLOWED",
			"pageFetchState":"SUCCESSFUL",
			"googleCanonical":"https://comparee.ai/landing/crm",
			"userCanonical":"https://comparee.ai/landing/crm",
			"lastCrawlTime":"2026-05-01T10:00:00Z"}}}`))
	})

	got, err := insp.Inspect(context.Background(), "https://comparee.ai/landing/crm")
	require.NoError(t, err)

	assert.Equal(t, "https://comparee.ai/landing/crm", got.URL)
	assert.True(t, got.Indexed())
	assert.Equal(t, "Submitted and indexed", got.CoverageState)
	assert.Equal(t, "INDEXING_ALLOWED", got.IndexingState)
	assert.Equal(t, "SUCCESSFUL", got.PageFetchState)
	assert.False(t, got.CanonicalMismatch())
	require.NotNil(t, got.LastCrawlTime)
	assert.True(t, got.LastCrawlTime.Equal(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestInspector_EmptyResult(t *testing.T) {
	insp := newTestInspector(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	got, err := insp.Inspect(context.Background(), "https://comparee.ai/landing/x")
	require.NoError(t, err)
	assert.Equal(t, "VERDICT_UNSPECIFIED", got.Verdict)
	assert.Nil(t, got.LastCrawlTime)
}

func TestInspector_APIErrorsClassify(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   domain.InspectionErrorType
	}{
		{http.StatusTooManyRequests, `{"error":{"code":429,"message":"Quota exceeded for quota metric"}}`, domain.ErrRateLimit},
		{http.StatusForbidden, `{"error":{"code":403,"message":"User does not have sufficient permission for site"}}`, domain.ErrPermissionDenied},
		{http.StatusServiceUnavailable, `{"error":{"code":503,"message":"The service is currently unavailable"}}`, domain.ErrServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.want), func(t *testing.T) {
			insp := newTestInspector(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := insp.Inspect(context.Background(), "https://comparee.ai/landing/x")
			require.Error(t, err)

			var apiErr *googleapi.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Code)
			assert.Equal(t, tc.want, domain.ClassifyInspectionError(err))
		})
	}
}

func TestInspector_ContextDeadlineIsTimeout(t *testing.T) {
	release := make(chan struct{})
	insp := newTestInspector(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := insp.Inspect(ctx, "https://comparee.ai/landing/x")
	require.Error(t, err)
	assert.Equal(t, domain.ErrTimeout, domain.ClassifyInspectionError(err))
}

func TestInspector_ThrottlesToQuota(t *testing.T) {
	insp := newTestInspector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	start := time.Now()
	for range 3 {
		_, err := insp.Inspect(context.Background(), "https://comparee.ai/landing/x")
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Minute/queriesPerMinute-10*time.Millisecond)
}
