package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
	"comparee/internal/core/port/mocks"
	"comparee/internal/metrics"
)

func TestEnforceBudgets_PublishesOneEventPerPausedCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	events := mocks.NewMockEventPublisher(t)

	paused := []domain.PausedCampaign{
		{CampaignID: 1, CompanyID: 10, ProductID: 100, BidAmount: decimal.RequireFromString("2.50"), Balance: decimal.RequireFromString("1.00")},
		{CampaignID: 2, CompanyID: 11, ProductID: 101, BidAmount: decimal.RequireFromString("0.75"), Balance: decimal.Zero},
	}
	repo.EXPECT().PauseUnderfundedCampaigns(mock.Anything).Return(paused, nil)

	var published []domain.CampaignPausedEvent
	events.EXPECT().
		Publish(mock.Anything, domain.SubjectCampaignPaused, mock.AnythingOfType("domain.CampaignPausedEvent")).
		Run(func(_ context.Context, _ string, payload interface{}) {
			published = append(published, payload.(domain.CampaignPausedEvent))
		}).
		Return(nil).
		Times(2)

	before := testutil.ToFloat64(metrics.CampaignsPaused)
	svc := NewCampaignUseCase(repo, events, discardLogger())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	got, err := svc.EnforceBudgets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, paused, got)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.CampaignsPaused))

	require.Len(t, published, 2)
	assert.Equal(t, int64(1), published[0].CampaignID)
	assert.Equal(t, "insufficient_balance", published[0].Reason)
	assert.Equal(t, svc.now(), published[1].PausedAt)
}

func TestEnforceBudgets_NothingToPause(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().PauseUnderfundedCampaigns(mock.Anything).Return(nil, nil)

	svc := NewCampaignUseCase(repo, mocks.NewMockEventPublisher(t), discardLogger())
	got, err := svc.EnforceBudgets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnforceBudgets_PublishFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().PauseUnderfundedCampaigns(mock.Anything).
		Return([]domain.PausedCampaign{{CampaignID: 1}}, nil)
	events := mocks.NewMockEventPublisher(t)
	events.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("nats: timeout"))

	svc := NewCampaignUseCase(repo, events, discardLogger())
	got, err := svc.EnforceBudgets(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEnforceBudgets_RepositoryError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().PauseUnderfundedCampaigns(mock.Anything).Return(nil, errors.New("deadlock detected"))

	svc := NewCampaignUseCase(repo, mocks.NewMockEventPublisher(t), discardLogger())
	_, err := svc.EnforceBudgets(context.Background())
	require.Error(t, err)
}

func TestApproveAndReject(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	events := mocks.NewMockEventPublisher(t)

	repo.EXPECT().SetApproval(mock.Anything, int64(5), true).
		Return(&domain.Campaign{ID: 5, CompanyID: 9, Status: domain.CampaignActive, IsApproved: true}, nil)
	repo.EXPECT().SetApproval(mock.Anything, int64(6), false).
		Return(&domain.Campaign{ID: 6, CompanyID: 9, Status: domain.CampaignRejected}, nil)
	repo.EXPECT().SetApproval(mock.Anything, int64(7), true).
		Return(nil, port.ErrNotFound)

	events.EXPECT().
		Publish(mock.Anything, domain.SubjectCampaignApproval, mock.MatchedBy(func(e domain.CampaignApprovalEvent) bool {
			return e.CampaignID == 5 && e.Approved && e.Status == domain.CampaignActive && e.Serving
		})).
		Return(nil).Once()
	events.EXPECT().
		Publish(mock.Anything, domain.SubjectCampaignApproval, mock.MatchedBy(func(e domain.CampaignApprovalEvent) bool {
			return e.CampaignID == 6 && !e.Approved && e.Status == domain.CampaignRejected && !e.Serving
		})).
		Return(nil).Once()

	svc := NewCampaignUseCase(repo, events, discardLogger())

	c, err := svc.Approve(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, c.Serving())

	c, err = svc.Reject(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignRejected, c.Status)

	_, err = svc.Approve(context.Background(), 7)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
