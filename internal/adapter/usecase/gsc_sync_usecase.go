package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
	"comparee/internal/metrics"
)

const gscSyncLockKey = "gsc-sync"

// GSCSyncConfig holds the knobs of the Search Console sync.
type GSCSyncConfig struct {
	Enabled bool
	// BaseURL is the public site origin, e.g. https://comparee.ai.
	BaseURL        string
	DailyQuota     int
	Pacing         time.Duration
	InspectTimeout time.Duration
	LockTTL        time.Duration
}

// LandingPrefix is the URL prefix of every landing page candidate.
func (c GSCSyncConfig) LandingPrefix() string {
	return strings.TrimRight(c.BaseURL, "/") + "/landing/"
}

// GSCSyncUseCase inspects a bounded batch of landing page URLs with the
// Search Console URL inspection API and stores the results.
type GSCSyncUseCase struct {
	cfg        GSCSyncConfig
	repo       port.IndexStatusRepository
	sitemap    port.SitemapSource
	inspectors port.InspectorProvider
	lock       port.JobLock
	logger     *slog.Logger

	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	backoff func() time.Duration
}

func NewGSCSyncUseCase(
	cfg GSCSyncConfig,
	repo port.IndexStatusRepository,
	sitemap port.SitemapSource,
	inspectors port.InspectorProvider,
	lock port.JobLock,
	logger *slog.Logger,
) *GSCSyncUseCase {
	return &GSCSyncUseCase{
		cfg:        cfg,
		repo:       repo,
		sitemap:    sitemap,
		inspectors: inspectors,
		lock:       lock,
		logger:     logger,
		now:        time.Now,
		sleep:      sleepCtx,
		backoff:    func() time.Duration { return 500*time.Millisecond + rand.N(time.Second) },
	}
}

// Run performs one sync. Refusals are returned as *domain.SyncError; any
// other error is unexpected.
func (u *GSCSyncUseCase) Run(ctx context.Context, req domain.SyncRequest) (*domain.SyncReport, error) {
	start := u.now()

	if !u.cfg.Enabled {
		return nil, domain.NewSyncError(domain.SyncDisabled, "GSC sync is disabled")
	}
	inspector, err := u.inspectors.Inspector(ctx)
	if errors.Is(err, port.ErrNotConfigured) {
		return nil, domain.NewSyncError(domain.SyncNotConfigured, "Search Console credentials are not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("build inspector: %w", err)
	}
	if err = req.Validate(); err != nil {
		return nil, err
	}

	release, ok, err := u.lock.TryAcquire(ctx, gscSyncLockKey, u.cfg.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !ok {
		return nil, domain.NewSyncError(domain.SyncAlreadyRunning, "another sync is in progress")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := release(ctx); err != nil {
			u.logger.Warn("release sync lock failed", slog.Any("error", err))
		}
	}()

	candidates, err := u.candidates(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.NewSyncError(domain.SyncNoCandidates, "no candidate URLs")
	}

	var statuses map[string]domain.IndexStatus
	if req.Priority == domain.PriorityNotIndexedFirst || !req.DryRun {
		statuses, err = u.repo.Statuses(ctx, candidates)
		if err != nil {
			// Ordering and failure bookkeeping degrade; the run itself can proceed.
			u.logger.Warn("load index statuses failed", slog.Any("error", err))
		}
	}
	if req.Priority == domain.PriorityNotIndexedFirst {
		prioritize(candidates, statuses, start)
	}

	remaining, err := u.quotaRemaining(ctx, start)
	if err != nil {
		return nil, err
	}

	report := &domain.SyncReport{
		DryRun:         req.DryRun,
		Candidates:     len(candidates),
		EffectiveLimit: min(req.Limit, remaining),
		QuotaRemaining: remaining,
		ErrorTypes:     map[domain.InspectionErrorType]int{},
	}
	if !req.DryRun && report.EffectiveLimit > 0 {
		batch := candidates[:min(report.EffectiveLimit, len(candidates))]
		u.inspectBatch(ctx, inspector, batch, statuses, report)
	}
	if report.Failed > 0 && report.ErrorTypes[domain.ErrPermissionDenied] == report.Failed {
		report.Hint = domain.PermissionHint
	}
	report.ElapsedMs = u.now().Sub(start).Milliseconds()

	u.logger.Info("gsc sync finished",
		slog.Bool("dry_run", report.DryRun),
		slog.Int("candidates", report.Candidates),
		slog.Int("processed", report.Processed),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("store_errors", report.StoreErrors),
		slog.Int64("elapsed_ms", report.ElapsedMs),
	)
	metrics.MarkJobRun(gscSyncLockKey)
	return report, nil
}

// candidates returns the explicit URLs of req, else the published landing
// pages, else the landing URLs of the sitemap.
func (u *GSCSyncUseCase) candidates(ctx context.Context, req domain.SyncRequest) ([]string, error) {
	if len(req.URLs) > 0 {
		return dedupe(req.URLs), nil
	}

	slugs, err := u.repo.PublishedLandingSlugs(ctx)
	if err != nil {
		u.logger.Warn("load landing pages failed, falling back to sitemap", slog.Any("error", err))
	}
	if len(slugs) > 0 {
		prefix := u.cfg.LandingPrefix()
		urls := make([]string, len(slugs))
		for i, s := range slugs {
			urls[i] = prefix + s
		}
		return dedupe(urls), nil
	}

	urls, err := u.sitemap.LandingURLs(ctx)
	if err != nil {
		u.logger.Error("sitemap fetch failed", slog.Any("error", err))
		return nil, domain.NewSyncError(domain.SyncSitemapUnavailable, "sitemap could not be fetched")
	}
	return dedupe(urls), nil
}

// quotaRemaining returns today's unused inspection budget. The day starts
// at local midnight.
func (u *GSCSyncUseCase) quotaRemaining(ctx context.Context, now time.Time) (int, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	used, err := u.repo.CountCheckedSince(ctx, midnight, u.cfg.LandingPrefix())
	if err != nil {
		return 0, fmt.Errorf("count today's inspections: %w", err)
	}
	return max(min(u.cfg.DailyQuota, domain.MaxSyncLimit)-used, 0), nil
}

func (u *GSCSyncUseCase) inspectBatch(
	ctx context.Context,
	inspector port.IndexInspector,
	batch []string,
	statuses map[string]domain.IndexStatus,
	report *domain.SyncReport,
) {
	for i, url := range batch {
		err := ctx.Err()
		if err == nil && i > 0 && u.cfg.Pacing > 0 {
			err = u.sleep(ctx, u.cfg.Pacing)
		}
		if err != nil {
			u.logger.Warn("gsc sync interrupted", slog.Int("processed", report.Processed), slog.Any("error", err))
			return
		}
		report.Processed++

		status, err := u.inspectWithRetry(ctx, inspector, url)
		if err != nil {
			typ := domain.ClassifyInspectionError(err)
			report.Failed++
			report.ErrorTypes[typ]++
			metrics.IncGSCInspection("failure", string(typ))
			u.logger.Warn("url inspection failed",
				slog.String("url", url),
				slog.String("error_type", string(typ)),
				slog.Any("error", err),
			)
			u.recordFailure(ctx, url, statuses[url], typ, err)
			continue
		}

		status.URL, status.CheckedAt = url, u.now()
		status.ErrorType, status.ErrorMessage = "", ""
		if err = u.repo.Upsert(ctx, *status); err != nil {
			// The inspection itself succeeded; only persisting it failed.
			report.StoreErrors++
			metrics.IncGSCInspection("store_error", "")
			u.logger.Error("store index status failed", slog.String("url", url), slog.Any("error", err))
			continue
		}
		report.Succeeded++
		metrics.IncGSCInspection("success", "")
	}
}

// inspectWithRetry retries RATE_LIMIT and SERVER_ERROR failures exactly
// once after a randomised backoff.
func (u *GSCSyncUseCase) inspectWithRetry(ctx context.Context, inspector port.IndexInspector, url string) (*domain.IndexStatus, error) {
	status, err := u.inspect(ctx, inspector, url)
	if err == nil || !domain.ClassifyInspectionError(err).Retryable() {
		return status, err
	}
	if serr := u.sleep(ctx, u.backoff()); serr != nil {
		return nil, err
	}
	return u.inspect(ctx, inspector, url)
}

func (u *GSCSyncUseCase) inspect(ctx context.Context, inspector port.IndexInspector, url string) (*domain.IndexStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.InspectTimeout)
	defer cancel()
	return inspector.Inspect(ctx, url)
}

// recordFailure keeps the last good inspection fields and notes the error.
func (u *GSCSyncUseCase) recordFailure(ctx context.Context, url string, prev domain.IndexStatus, typ domain.InspectionErrorType, cause error) {
	s := prev
	s.URL = url
	s.ErrorType = string(typ)
	s.ErrorMessage = truncate(cause.Error(), 500)
	s.CheckedAt = u.now()
	if err := u.repo.Upsert(ctx, s); err != nil {
		u.logger.Error("store inspection failure failed", slog.String("url", url), slog.Any("error", err))
	}
}

// prioritize stable-sorts urls by domain.PriorityTier.
func prioritize(urls []string, statuses map[string]domain.IndexStatus, now time.Time) {
	tier := make(map[string]int, len(urls))
	for _, url := range urls {
		var s *domain.IndexStatus
		if st, ok := statuses[url]; ok {
			s = &st
		}
		tier[url] = domain.PriorityTier(s, now)
	}
	sort.SliceStable(urls, func(i, j int) bool { return tier[urls[i]] < tier[urls[j]] })
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
