package gsc

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"comparee/internal/core/port"
)

// SecretReader fetches a raw secret value by id.
type SecretReader interface {
	SecretString(ctx context.Context, id string) (string, error)
}

// Credentials locates the service account key.
type Credentials struct {
	// Base64JSON takes precedence over SecretID.
	Base64JSON string
	SecretID   string
	SiteURL    string
}

// Provider builds the Search Console inspector on first use and reuses it
// afterwards.
type Provider struct {
	creds   Credentials
	secrets SecretReader

	mu        sync.Mutex
	inspector port.IndexInspector
	build     func(ctx context.Context, key []byte, siteURL string) (port.IndexInspector, error)
}

// NewProvider returns a provider. secrets may be nil when no secret store
// is available.
func NewProvider(creds Credentials, secrets SecretReader) *Provider {
	return &Provider{
		creds:   creds,
		secrets: secrets,
		build: func(ctx context.Context, key []byte, siteURL string) (port.IndexInspector, error) {
			return NewInspector(ctx, key, siteURL)
		},
	}
}

// Inspector returns port.ErrNotConfigured when no key source is set.
func (p *Provider) Inspector(ctx context.Context) (port.IndexInspector, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inspector != nil {
		return p.inspector, nil
	}

	key, err := p.key(ctx)
	if err != nil {
		return nil, err
	}
	// The client outlives the request that triggered its creation.
	insp, err := p.build(context.WithoutCancel(ctx), key, p.creds.SiteURL)
	if err != nil {
		return nil, err
	}
	p.inspector = insp
	return insp, nil
}

func (p *Provider) key(ctx context.Context) ([]byte, error) {
	if b64 := strings.TrimSpace(p.creds.Base64JSON); b64 != "" {
		key, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("decode GCP_SA_JSON_BASE64: %w", err)
		}
		return key, nil
	}
	if p.creds.SecretID != "" && p.secrets != nil {
		raw, err := p.secrets.SecretString(ctx, p.creds.SecretID)
		if err != nil {
			return nil, fmt.Errorf("load service account: %w", err)
		}
		return []byte(raw), nil
	}
	return nil, port.ErrNotConfigured
}
