package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

// CompanyUseCase implements the admin company screens.
type CompanyUseCase struct {
	repo   port.CompanyRepository
	events port.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func NewCompanyUseCase(repo port.CompanyRepository, events port.EventPublisher, logger *slog.Logger) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, events: events, logger: logger, now: time.Now}
}

func (u *CompanyUseCase) List(ctx context.Context, f domain.CompanyFilter) ([]domain.CompanyOverview, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("unknown status %q: %w", f.Status, port.ErrValidation)
	}
	list, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	return list, total, nil
}

// Apply moves the company along the admin state machine. Suspending or
// cancelling pauses all of its active campaigns in the same transaction.
func (u *CompanyUseCase) Apply(ctx context.Context, companyID int64, action domain.CompanyAction) (*domain.CompanyStatusChangedEvent, error) {
	c, err := u.repo.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	to, err := action.Next(c.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidTransition, err)
	}
	paused, err := u.repo.ChangeStatus(ctx, companyID, c.Status, to, action.PausesCampaigns())
	if err != nil {
		return nil, err
	}

	evt := &domain.CompanyStatusChangedEvent{
		CompanyID:       companyID,
		Action:          action,
		From:            c.Status,
		To:              to,
		PausedCampaigns: paused,
		ChangedAt:       u.now().UTC(),
	}
	u.logger.Info("company status changed",
		slog.Int64("company_id", companyID),
		slog.String("action", string(action)),
		slog.String("from", string(c.Status)),
		slog.String("to", string(to)),
		slog.Int64("paused_campaigns", paused),
	)
	if err = u.events.Publish(ctx, domain.SubjectCompanyStatusChanged, evt); err != nil {
		u.logger.Warn("publish event failed", slog.String("subject", domain.SubjectCompanyStatusChanged), slog.Any("error", err))
	}
	return evt, nil
}

func (u *CompanyUseCase) Update(ctx context.Context, companyID int64, upd domain.CompanyUpdate) (*domain.Company, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("nothing to update: %w", port.ErrValidation)
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("name must not be empty: %w", port.ErrValidation)
		}
		upd.Name = &name
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return nil, fmt.Errorf("invalid email %q: %w", email, port.ErrValidation)
			}
		}
		upd.Email = &email
	}
	if upd.Website != nil {
		website := strings.TrimSpace(*upd.Website)
		upd.Website = &website
	}
	return u.repo.UpdateProfile(ctx, companyID, upd)
}

// DeleteBlockedError carries the reason a company cannot be deleted.
type DeleteBlockedError struct {
	Reason string
}

func (e *DeleteBlockedError) Error() string { return e.Reason }

func (e *DeleteBlockedError) Unwrap() error { return port.ErrConflict }

// Delete removes a pending or rejected company without campaigns or money.
func (u *CompanyUseCase) Delete(ctx context.Context, companyID int64) error {
	facts, err := u.repo.DeletionFacts(ctx, companyID)
	if err != nil {
		return err
	}
	if reason := facts.DeletionBlocker(); reason != "" {
		return &DeleteBlockedError{Reason: reason}
	}
	if err = u.repo.Delete(ctx, companyID); err != nil {
		if errors.Is(err, port.ErrConflict) {
			return &DeleteBlockedError{Reason: "company changed while deleting, retry"}
		}
		return err
	}
	u.logger.Info("company deleted", slog.Int64("company_id", companyID))
	return nil
}
