package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRequestValidate(t *testing.T) {
	ok := SyncRequest{Limit: DefaultSyncLimit, Priority: PriorityNotIndexedFirst}
	assert.NoError(t, ok.Validate())
	assert.NoError(t, SyncRequest{Limit: MaxSyncLimit, Priority: PriorityAll}.Validate())

	for name, req := range map[string]SyncRequest{
		"zero limit":       {Limit: 0, Priority: PriorityAll},
		"limit too large":  {Limit: 2000, Priority: PriorityAll},
		"unknown priority": {Limit: 10, Priority: "newest"},
	} {
		t.Run(name, func(t *testing.T) {
			err := req.Validate()
			var syncErr *SyncError
			require.True(t, errors.As(err, &syncErr))
			assert.Equal(t, SyncBadRequest, syncErr.Code)
		})
	}
}

func TestSyncErrorMessage(t *testing.T) {
	err := NewSyncError(SyncNoCandidates, "nothing to inspect")
	assert.Equal(t, "no_candidates: nothing to inspect", err.Error())
}
