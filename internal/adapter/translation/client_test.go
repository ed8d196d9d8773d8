package translation

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

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

func testJob() domain.TranslationJob {
	return domain.NewProductTranslationJob(domain.Product{
		ID:          7,
		Name:        "HubSpot CRM",
		Description: "Free CRM",
		Category:    "CRM",
	}, []string{"de", "fr"})
}

func TestClient_Submit(t *testing.T) {
	job := testJob()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/translate/jobs", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, job.IdempotencyKey, r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got jobRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "product", got.EntityType)
		assert.Equal(t, int64(7), got.EntityID)
		assert.Equal(t, []string{"de", "fr"}, got.TargetLanguages)
		assert.Equal(t, "HubSpot CRM", got.Fields["name"])

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret", time.Second)
	require.NoError(t, c.Submit(context.Background(), job))
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		wantErr   bool
		permanent bool
	}{
		{"created", http.StatusCreated, false, false},
		{"duplicate", http.StatusConflict, false, false},
		{"bad request", http.StatusBadRequest, true, true},
		{"unauthorized", http.StatusUnauthorized, true, true},
		{"request timeout", http.StatusRequestTimeout, true, false},
		{"throttled", http.StatusTooManyRequests, true, false},
		{"server error", http.StatusBadGateway, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, "", time.Second).Submit(context.Background(), testJob())
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.permanent, errors.Is(err, port.ErrValidation))
		})
	}
}

func TestClient_OmitsEmptyAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Api-Key"]
		assert.False(t, present)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL, "", time.Second).Submit(context.Background(), testJob()))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := NewClient(srv.URL, "", 20*time.Millisecond).Submit(context.Background(), testJob())
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrValidation)
}
