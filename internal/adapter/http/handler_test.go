package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/port/mocks"
)

type fixture struct {
	listings  *mocks.MockListingUseCase
	companies *mocks.MockCompanyUseCase
	campaigns *mocks.MockCampaignUseCase
	gsc       *mocks.MockGSCSyncUseCase
	handler   *Handler
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		listings:  mocks.NewMockListingUseCase(t),
		companies: mocks.NewMockCompanyUseCase(t),
		campaigns: mocks.NewMockCampaignUseCase(t),
		gsc:       mocks.NewMockGSCSyncUseCase(t),
	}
	f.handler = NewHandler(Services{
		Listings:  f.listings,
		Companies: f.companies,
		Campaigns: f.campaigns,
		GSCSync:   f.gsc,
	}, opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func (f *fixture) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

type testEnvelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *pagination     `json:"pagination"`
	Error      string          `json:"error"`
	Details    string          `json:"details"`
	ErrorCode  string          `json:"errorCode"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestMetricsRoute(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
