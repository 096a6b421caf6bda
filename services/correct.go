package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// correctTimeout bounds a single provider call.
	correctTimeout = 8 * time.Second
	// maxCorrectConcurrency bounds simultaneous provider calls in a batch.
	maxCorrectConcurrency = 3

	backoffTimeout = 1 * time.Minute
	backoffError   = 2 * time.Minute
	backoffStatus  = 5 * time.Minute
)

// Corrector maps a free-text product name to a best-guess canonical name.
// It is treated as unreliable: errors degrade to "unmatched", never to a
// caller-visible failure.
type Corrector interface {
	CorrectName(ctx context.Context, name string) (string, error)
}

// ProviderStatusError reports a non-success HTTP status from the provider.
type ProviderStatusError struct {
	StatusCode int
}

func (e *ProviderStatusError) Error() string {
	return fmt.Sprintf("name correction provider returned status %d", e.StatusCode)
}

// correctionBreaker suppresses provider calls for a backoff window after a
// failure: 1 minute on timeout, 2 minutes on other errors, 5 minutes on a
// non-success HTTP status.
type correctionBreaker struct {
	mu    sync.Mutex
	until time.Time
	now   func() time.Time
}

func newCorrectionBreaker() *correctionBreaker {
	return &correctionBreaker{now: time.Now}
}

func (b *correctionBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.now().Before(b.until)
}

func (b *correctionBreaker) trip(err error) {
	window := backoffError
	var statusErr *ProviderStatusError
	if errors.As(err, &statusErr) {
		window = backoffStatus
	} else if errors.Is(err, context.DeadlineExceeded) {
		window = backoffTimeout
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if until := b.now().Add(window); until.After(b.until) {
		b.until = until
	}
}

// GuardedCorrector wraps a Corrector with the backoff window. While the
// window is open every call fails fast without touching the provider.
type GuardedCorrector struct {
	inner   Corrector
	breaker *correctionBreaker
}

var errCorrectionSuppressed = errors.New("name correction suppressed by backoff")

func NewGuardedCorrector(inner Corrector) *GuardedCorrector {
	return &GuardedCorrector{inner: inner, breaker: newCorrectionBreaker()}
}

func (g *GuardedCorrector) CorrectName(ctx context.Context, name string) (string, error) {
	if !g.breaker.allow() {
		return "", errCorrectionSuppressed
	}
	corrected, err := g.inner.CorrectName(ctx, name)
	if err != nil {
		g.breaker.trip(err)
		return "", err
	}
	return corrected, nil
}

// BatchCorrect sends each name to the corrector with at most
// maxCorrectConcurrency calls in flight and an 8 second timeout per call.
// Results are keyed by the original input so callers can reassemble their
// item lists in order no matter how the network calls complete. Failed
// corrections are simply absent from the map.
func BatchCorrect(ctx context.Context, corrector Corrector, names []string) map[string]string {
	var mu sync.Mutex
	corrections := make(map[string]string, len(names))

	var g errgroup.Group
	g.SetLimit(maxCorrectConcurrency)
	for _, name := range names {
		name := name
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, correctTimeout)
			defer cancel()

			corrected, err := corrector.CorrectName(callCtx, name)
			if err != nil {
				if !errors.Is(err, errCorrectionSuppressed) {
					log.Printf("correct: %q failed: %v", name, err)
				}
				return nil
			}
			if corrected == "" {
				return nil
			}
			mu.Lock()
			corrections[name] = corrected
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return corrections
}
