package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

const jobsPath = "/api/translate/jobs"

// Client submits translation jobs to the translation microservice.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		url:    strings.TrimRight(baseURL, "/") + jobsPath,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

type jobRequest struct {
	EntityType      string            `json:"entityType"`
	EntityID        int64             `json:"entityId"`
	Fields          map[string]string `json:"fields"`
	TargetLanguages []string          `json:"targetLanguages"`
}

// Submit posts job. A 409 means the service already holds a job with the
// same idempotency key and counts as delivered. Client errors other than
// 408 and 429 wrap port.ErrValidation since a retry cannot succeed.
func (c *Client) Submit(ctx context.Context, job domain.TranslationJob) error {
	body, err := json.Marshal(jobRequest{
		EntityType:      job.EntityType,
		EntityID:        job.EntityID,
		Fields:          job.Fields,
		TargetLanguages: job.TargetLanguages,
	})
	if err != nil {
		return fmt.Errorf("encode translation job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", job.IdempotencyKey)
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit translation job: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch code := resp.StatusCode; {
	case code >= 200 && code < 300, code == http.StatusConflict:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests, code >= 500:
		return fmt.Errorf("translation service: status %d: %s", code, readSnippet(resp.Body))
	default:
		return fmt.Errorf("%w: translation service rejected job: status %d: %s",
			port.ErrValidation, code, readSnippet(resp.Body))
	}
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}
