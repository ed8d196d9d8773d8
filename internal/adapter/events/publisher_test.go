package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
)

type fakeJetStream struct {
	published []*nats.Msg
	fail      bool
}

func (f *fakeJetStream) PublishMsg(msg *nats.Msg, _ ...nats.PubOpt) (*nats.PubAck, error) {
	if f.fail {
		return nil, errors.New("nats: no responders available for request")
	}
	f.published = append(f.published, msg)
	return &nats.PubAck{Stream: "EVENTS"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublish_EncodesPayloadAndHeaders(t *testing.T) {
	js := &fakeJetStream{}
	p := newPublisher(js, "comparee.", "comparee-api", testLogger())

	evt := domain.CompanyStatusChangedEvent{CompanyID: 7, Action: domain.ActionSuspend,
		From: domain.CompanyActive, To: domain.CompanySuspended, PausedCampaigns: 2}
	require.NoError(t, p.Publish(context.Background(), domain.SubjectCompanyStatusChanged, evt))

	require.Len(t, js.published, 1)
	msg := js.published[0]
	assert.Equal(t, "comparee.evt.company.status_changed.v1", msg.Subject)
	assert.Equal(t, "comparee-api", msg.Header.Get("source"))
	assert.NotEmpty(t, msg.Header.Get(nats.MsgIdHdr))
	assert.Equal(t, msg.Header.Get("event_id"), msg.Header.Get(nats.MsgIdHdr))

	var got domain.CompanyStatusChangedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, int64(7), got.CompanyID)
	assert.Equal(t, domain.CompanySuspended, got.To)
	assert.Equal(t, int64(2), got.PausedCampaigns)
}

func TestPublish_PropagatesBrokerError(t *testing.T) {
	p := newPublisher(&fakeJetStream{fail: true}, "", "comparee-api", testLogger())

	err := p.Publish(context.Background(), domain.SubjectCampaignPaused, map[string]int{"campaignId": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish evt.campaign.paused.v1")
}

func TestPublish_UnencodablePayload(t *testing.T) {
	js := &fakeJetStream{}
	p := newPublisher(js, "", "comparee-api", testLogger())

	err := p.Publish(context.Background(), "x", make(chan int))
	require.Error(t, err)
	assert.Empty(t, js.published)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Publish(context.Background(), "x", nil))
}

func TestPublish_PrefixBecomesSubjectToken(t *testing.T) {
	js := &fakeJetStream{}
	p := newPublisher(js, "comparee", "comparee-api", testLogger())

	require.NoError(t, p.Publish(context.Background(), domain.SubjectCampaignApproval, struct{}{}))
	assert.Equal(t, "comparee.evt.campaign.approval.v1", js.published[0].Subject)
}
