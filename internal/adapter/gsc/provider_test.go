package gsc

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

type stubInspector struct{}

func (stubInspector) Inspect(_ context.Context, url string) (*domain.IndexStatus, error) {
	return &domain.IndexStatus{URL: url}, nil
}

type stubSecrets struct {
	value string
	err   error
	calls int
}

func (s *stubSecrets) SecretString(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.value, s.err
}

// recordingBuild swaps the client constructor and records the key it got.
func recordingBuild(p *Provider) *[][]byte {
	var keys [][]byte
	p.build = func(_ context.Context, key []byte, siteURL string) (port.IndexInspector, error) {
		keys = append(keys, key)
		return stubInspector{}, nil
	}
	return &keys
}

func TestProvider_Base64Credentials(t *testing.T) {
	secrets := &stubSecrets{value: `{"from":"secrets"}`}
	p := NewProvider(Credentials{
		Base64JSON: base64.StdEncoding.EncodeToString([]byte(`{"from":"env"}`)),
		SecretID:   "comparee/gsc",
		SiteURL:    "sc-domain:comparee.ai",
	}, secrets)
	keys := recordingBuild(p)

	first, err := p.Inspector(context.Background())
	require.NoError(t, err)
	second, err := p.Inspector(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, *keys, 1, "inspector is built once")
	assert.JSONEq(t, `{"from":"env"}`, string((*keys)[0]))
	assert.Zero(t, secrets.calls)
}

func TestProvider_SecretFallback(t *testing.T) {
	secrets := &stubSecrets{value: `{"from":"secrets"}`}
	p := NewProvider(Credentials{SecretID: "comparee/gsc"}, secrets)
	keys := recordingBuild(p)

	_, err := p.Inspector(context.Background())
	require.NoError(t, err)
	require.Len(t, *keys, 1)
	assert.JSONEq(t, `{"from":"secrets"}`, string((*keys)[0]))
}

func TestProvider_SecretError(t *testing.T) {
	p := NewProvider(Credentials{SecretID: "comparee/gsc"}, &stubSecrets{err: errors.New("access denied")})
	keys := recordingBuild(p)

	_, err := p.Inspector(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, *keys)

	// Failures are not cached.
	p.secrets = &stubSecrets{value: `{}`}
	_, err = p.Inspector(context.Background())
	require.NoError(t, err)
}

func TestProvider_NotConfigured(t *testing.T) {
	for name, p := range map[string]*Provider{
		"nothing set":      NewProvider(Credentials{}, &stubSecrets{}),
		"secret store off": NewProvider(Credentials{SecretID: "comparee/gsc"}, nil),
	} {
		t.Run(name, func(t *testing.T) {
			recordingBuild(p)
			_, err := p.Inspector(context.Background())
			assert.ErrorIs(t, err, port.ErrNotConfigured)
		})
	}
}

func TestProvider_BadBase64(t *testing.T) {
	p := NewProvider(Credentials{Base64JSON: "not*base64"}, nil)
	recordingBuild(p)

	_, err := p.Inspector(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrNotConfigured)
	assert.Contains(t, err.Error(), "GCP_SA_JSON_BASE64")
}
