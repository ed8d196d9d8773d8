package httpadapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

func TestCampaignDecision(t *testing.T) {
	f := newFixture(t, Options{})
	f.campaigns.EXPECT().Approve(mock.Anything, int64(12)).
		Return(&domain.Campaign{ID: 12, Status: domain.CampaignActive, IsApproved: true}, nil)
	f.campaigns.EXPECT().Reject(mock.Anything, int64(13)).
		Return(nil, port.ErrNotFound)

	rec := f.do(http.MethodPost, "/api/admin/campaigns/12/approve", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"isApproved":true`)

	rec = f.do(http.MethodPost, "/api/admin/campaigns/13/reject", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPost, "/api/admin/campaigns/abc/approve", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSweep(t *testing.T) {
	t.Run("paused", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.campaigns.EXPECT().EnforceBudgets(mock.Anything).Return([]domain.PausedCampaign{{
			CampaignID: 3, CompanyID: 1, ProductID: 9,
			BidAmount: decimal.NewFromInt(5), Balance: decimal.NewFromInt(2),
		}}, nil)

		rec := f.do(http.MethodPost, "/api/admin/campaigns/sweep", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"count":1`)
	})

	t.Run("nothing to pause", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.campaigns.EXPECT().EnforceBudgets(mock.Anything).Return(nil, nil)

		rec := f.do(http.MethodPost, "/api/admin/campaigns/sweep", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"paused":[],"count":0}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("failure", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.campaigns.EXPECT().EnforceBudgets(mock.Anything).Return(nil, errors.New("pause campaigns: timeout"))

		rec := f.do(http.MethodPost, "/api/admin/campaigns/sweep", "", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decodeEnvelope(t, rec).Error)
	})
}
