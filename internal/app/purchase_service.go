package app

import (
	"context"
	"errors"
	"time"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type PurchaseRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetTicketForUpdate(ctx context.Context, ticketID string) (domain.PublicTicket, error)
	SetPurchaseCount(ctx context.Context, ticketID string, purchaseCount int) error
}

// PurchaseService applies signed deltas to a ticket's sold count under
// the capacity invariant. The whole read-modify-write runs in one
// transaction holding the row lock; on a transient conflict the
// transaction is abandoned and re-entered fresh after a fixed backoff,
// up to maxAttempts, after which ErrContention is surfaced.
type PurchaseService struct {
	repo        PurchaseRepository
	backoff     time.Duration
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration) error
}

const (
	defaultPurchaseBackoff     = 100 * time.Millisecond
	defaultPurchaseMaxAttempts = 10
)

func NewPurchaseService(repo PurchaseRepository, opts ...PurchaseServiceOption) *PurchaseService {
	svc := &PurchaseService{
		repo:        repo,
		backoff:     defaultPurchaseBackoff,
		maxAttempts: defaultPurchaseMaxAttempts,
		sleep:       sleepCtx,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type PurchaseServiceOption func(*PurchaseService)

// WithRetryPolicy overrides the contention backoff and attempt cap.
func WithRetryPolicy(backoff time.Duration, maxAttempts int) PurchaseServiceOption {
	return func(s *PurchaseService) {
		if backoff >= 0 {
			s.backoff = backoff
		}
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
	}
}

// Purchase buys (delta > 0) or returns (delta < 0) units of a ticket and
// reports the post-mutation state. Delta validation against non-integer
// input happens at the transport boundary before this is called.
func (s *PurchaseService) Purchase(ctx context.Context, ticketID string, delta int) (domain.PublicTicket, error) {
	var result domain.PublicTicket

	for attempt := 1; ; attempt++ {
		err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
			ticket, err := s.repo.GetTicketForUpdate(txCtx, ticketID)
			if err != nil {
				return err
			}

			newCount := ticket.PurchaseCount + delta
			if newCount > ticket.MaxPurchaseCount {
				return domain.ErrCapacityExceeded
			}
			if newCount < 0 {
				return domain.ErrInvalidReturn
			}

			if err := s.repo.SetPurchaseCount(txCtx, ticketID, newCount); err != nil {
				return err
			}

			ticket.PurchaseCount = newCount
			result = ticket
			return nil
		})
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, domain.ErrTransient) {
			return domain.PublicTicket{}, err
		}
		if attempt >= s.maxAttempts {
			return domain.PublicTicket{}, domain.ErrContention
		}
		if err := s.sleep(ctx, s.backoff); err != nil {
			return domain.PublicTicket{}, err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
