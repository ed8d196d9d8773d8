package gsc

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/searchconsole/v1"

	"comparee/internal/core/domain"
)

// queriesPerMinute is the URL Inspection API quota of one property.
const queriesPerMinute = 600

// Inspector calls the Search Console URL Inspection API for one property.
// Calls are throttled to the per-property quota.
type Inspector struct {
	svc     *searchconsole.Service
	siteURL string
	limiter *rate.Limiter
}

// NewInspector authenticates with a service account JSON key. siteURL is
// the Search Console property, e.g. sc-domain:comparee.ai.
func NewInspector(ctx context.Context, credentialsJSON []byte, siteURL string, opts ...option.ClientOption) (*Inspector, error) {
	opts = append([]option.ClientOption{
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(searchconsole.WebmastersReadonlyScope),
	}, opts...)
	return newInspector(ctx, siteURL, opts...)
}

func newInspector(ctx context.Context, siteURL string, opts ...option.ClientOption) (*Inspector, error) {
	svc, err := searchconsole.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("search console client: %w", err)
	}
	return &Inspector{
		svc:     svc,
		siteURL: siteURL,
		limiter: rate.NewLimiter(rate.Every(time.Minute/queriesPerMinute), 1),
	}, nil
}

// Inspect returns the index status of url. API errors are returned
// unchanged so that their message can be classified.
func (i *Inspector) Inspect(ctx context.Context, url string) (*domain.IndexStatus, error) {
	if err := i.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := i.svc.UrlInspection.Index.Inspect(&searchconsole.InspectUrlIndexRequest{
		InspectionUrl: url,
		SiteUrl:       i.siteURL,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	s := &domain.IndexStatus{URL: url}
	if resp.InspectionResult == nil || resp.InspectionResult.IndexStatusResult == nil {
		s.Verdict = "VERDICT_UNSPECIFIED"
		return s, nil
	}
	r := resp.InspectionResult.IndexStatusResult
	s.Verdict = r.Verdict
	s.CoverageState = r.CoverageState
	s.IndexingState = r.IndexingState
	s.PageFetchState = r.PageFetchState
	s.GoogleCanonical = r.GoogleCanonical
	s.UserCanonical = r.UserCanonical
	if r.LastCrawlTime != "" {
		if t, err := time.Parse(time.RFC3339, r.LastCrawlTime); err == nil {
			s.LastCrawlTime = &t
		}
	}
	return s, nil
}
