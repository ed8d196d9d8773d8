package httpadapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
)

var prodOptions = Options{Production: true, CronToken: "s3cret"}

func cronHeader(token string) http.Header {
	return http.Header{"X-Gsc-Cron-Token": {token}}
}

func TestGSCSync_OnlyMountedInProduction(t *testing.T) {
	f := newFixture(t, Options{CronToken: "s3cret"})
	rec := f.do(http.MethodPost, "/api/seo/gsc-sync", "", cronHeader("s3cret"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGSCSync_CronToken(t *testing.T) {
	for name, opts := range map[string]struct {
		configured string
		sent       string
	}{
		"missing header":   {configured: "s3cret", sent: ""},
		"wrong token":      {configured: "s3cret", sent: "guess"},
		"token not set up": {configured: "", sent: ""},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, Options{Production: true, CronToken: opts.configured})
			rec := f.do(http.MethodPost, "/api/seo/gsc-sync", `{"dryRun":false}`, cronHeader(opts.sent))
			require.Equal(t, http.StatusForbidden, rec.Code)

			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "forbidden", env.ErrorCode)
		})
	}
}

func TestGSCSync_Defaults(t *testing.T) {
	f := newFixture(t, prodOptions)
	f.gsc.EXPECT().Run(mock.Anything, domain.SyncRequest{
		Limit:    100,
		DryRun:   true,
		Priority: domain.PriorityNotIndexedFirst,
	}).Return(&domain.SyncReport{DryRun: true, Candidates: 40, EffectiveLimit: 40, QuotaRemaining: 1500}, nil)

	rec := f.do(http.MethodPost, "/api/seo/gsc-sync", "", cronHeader("s3cret"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"dryRun": true,
		"candidates": 40,
		"effectiveLimit": 40,
		"quotaRemaining": 1500,
		"processed": 0,
		"succeeded": 0,
		"failed": 0,
		"errorTypes": null,
		"elapsedMs": 0
	}`, rec.Body.String())
}

func TestGSCSync_BodyOverrides(t *testing.T) {
	f := newFixture(t, prodOptions)
	f.gsc.EXPECT().Run(mock.Anything, domain.SyncRequest{
		Limit:    2000,
		DryRun:   false,
		Priority: domain.PriorityAll,
		URLs:     []string{"https://comparee.ai/landing/crm"},
	}).Return(nil, domain.NewSyncError(domain.SyncBadRequest, "limit must be between 1 and 1500"))

	rec := f.do(http.MethodPost, "/api/seo/gsc-sync",
		`{"limit":2000,"dryRun":false,"priority":"all","urls":["https://comparee.ai/landing/crm"]}`,
		cronHeader("s3cret"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "bad_request", env.ErrorCode)
	assert.Equal(t, "limit must be between 1 and 1500", env.Error)
}

func TestGSCSync_InvalidJSON(t *testing.T) {
	f := newFixture(t, prodOptions)
	rec := f.do(http.MethodPost, "/api/seo/gsc-sync", `{"limit":`, cronHeader("s3cret"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeEnvelope(t, rec).ErrorCode)
}

func TestGSCSync_ErrorStatus(t *testing.T) {
	cases := map[domain.SyncErrorCode]int{
		domain.SyncDisabled:           http.StatusServiceUnavailable,
		domain.SyncNotConfigured:      http.StatusServiceUnavailable,
		domain.SyncAlreadyRunning:     http.StatusConflict,
		domain.SyncSitemapUnavailable: http.StatusBadGateway,
		domain.SyncNoCandidates:       http.StatusUnprocessableEntity,
	}
	for code, status := range cases {
		t.Run(string(code), func(t *testing.T) {
			f := newFixture(t, prodOptions)
			f.gsc.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, domain.NewSyncError(code, "msg"))

			rec := f.do(http.MethodPost, "/api/seo/gsc-sync", "{}", cronHeader("s3cret"))
			require.Equal(t, status, rec.Code)
			assert.Equal(t, string(code), decodeEnvelope(t, rec).ErrorCode)
		})
	}

	t.Run("unexpected", func(t *testing.T) {
		f := newFixture(t, prodOptions)
		f.gsc.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, errors.New("load statuses: boom"))

		rec := f.do(http.MethodPost, "/api/seo/gsc-sync", "{}", cronHeader("s3cret"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decodeEnvelope(t, rec).Error)
	})
}
