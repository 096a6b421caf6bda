package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// funcCorrector adapts a function to the Corrector interface.
type funcCorrector func(ctx context.Context, name string) (string, error)

func (f funcCorrector) CorrectName(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

func TestBatchCorrectKeysResultsByInput(t *testing.T) {
	corrector := funcCorrector(func(ctx context.Context, name string) (string, error) {
		return strings.ToUpper(name), nil
	})

	got := BatchCorrect(context.Background(), corrector, []string{"chapati", "prata"})

	assert.Equal(t, map[string]string{"chapati": "CHAPATI", "prata": "PRATA"}, got)
}

func TestBatchCorrectSkipsFailures(t *testing.T) {
	corrector := funcCorrector(func(ctx context.Context, name string) (string, error) {
		if name == "bad" {
			return "", errors.New("provider hiccup")
		}
		return "Chapathi", nil
	})

	got := BatchCorrect(context.Background(), corrector, []string{"bad", "chapati"})

	assert.Equal(t, map[string]string{"chapati": "Chapathi"}, got)
}

func TestBatchCorrectBoundsConcurrency(t *testing.T) {
	var inFlight, peak int64
	var mu sync.Mutex

	corrector := funcCorrector(func(ctx context.Context, name string) (string, error) {
		n := atomic.AddInt64(&inFlight, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		return name, nil
	})

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	BatchCorrect(context.Background(), corrector, names)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(maxCorrectConcurrency))
	assert.Greater(t, peak, int64(0))
}

func TestCorrectionBreakerWindows(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		window time.Duration
	}{
		{"timeout", context.DeadlineExceeded, backoffTimeout},
		{"generic error", errors.New("boom"), backoffError},
		{"non-success status", &ProviderStatusError{StatusCode: 503}, backoffStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			b := newCorrectionBreaker()
			b.now = func() time.Time { return now }

			assert.True(t, b.allow())
			b.trip(tt.err)

			now = now.Add(tt.window - time.Second)
			assert.False(t, b.allow(), "still inside the %v window", tt.window)

			now = now.Add(2 * time.Second)
			assert.True(t, b.allow(), "window %v has passed", tt.window)
		})
	}
}

func TestGuardedCorrectorSuppressesAfterFailure(t *testing.T) {
	var calls int64
	inner := funcCorrector(func(ctx context.Context, name string) (string, error) {
		atomic.AddInt64(&calls, 1)
		return "", errors.New("boom")
	})

	g := NewGuardedCorrector(inner)

	_, err := g.CorrectName(context.Background(), "chapati")
	assert.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// Backoff window is open now; the provider must not be touched again.
	_, err = g.CorrectName(context.Background(), "prata")
	assert.ErrorIs(t, err, errCorrectionSuppressed)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}
