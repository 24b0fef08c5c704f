package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

var (
	errService = errors.New("service error")
	errIgnored = errors.New("ignored")
)

func successfulService() error { return nil }

func failingService() error { return errService }

func newTestBreaker(clock *fakeClock, opts ...Option) CircuitBreaker {
	cfg := Config{
		RecordLength:     10,
		Timeout:          2 * time.Second,
		Percentile:       0.3,
		RecoveryRequests: 3,
	}
	return New(cfg, append(opts, withClock(clock.now))...)
}

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	t.Run("stays closed on success", func(t *testing.T) {
		t.Parallel()
		cb := newTestBreaker(&fakeClock{t: time.Unix(0, 0)})
		for i := 0; i < 80; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
		require.Equal(t, Closed, cb.State())
	})

	t.Run("opens after failure ratio", func(t *testing.T) {
		t.Parallel()
		cb := newTestBreaker(&fakeClock{t: time.Unix(0, 0)})
		for i := 0; i < 3; i++ {
			require.ErrorIs(t, cb.Call(failingService), errService)
		}
		require.Equal(t, Open, cb.State())
		require.ErrorIs(t, cb.Call(successfulService), ErrOpenCB)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{t: time.Unix(0, 0)}
		cb := newTestBreaker(clock)
		for i := 0; i < 3; i++ {
			_ = cb.Call(failingService)
		}
		require.Equal(t, Open, cb.State())

		clock.advance(3 * time.Second)
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, HalfOpen, cb.State())
		require.NoError(t, cb.Call(successfulService))
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, Closed, cb.State())
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{t: time.Unix(0, 0)}
		cb := newTestBreaker(clock)
		for i := 0; i < 3; i++ {
			_ = cb.Call(failingService)
		}
		clock.advance(3 * time.Second)
		require.ErrorIs(t, cb.Call(failingService), errService)
		require.Equal(t, Open, cb.State())
		require.ErrorIs(t, cb.Call(successfulService), ErrOpenCB)
	})

	t.Run("predicate skips errors", func(t *testing.T) {
		t.Parallel()
		cb := newTestBreaker(&fakeClock{t: time.Unix(0, 0)}, WithFailurePredicate(func(err error) bool {
			return err != nil && !errors.Is(err, errIgnored)
		}))
		for i := 0; i < 10; i++ {
			require.ErrorIs(t, cb.Call(func() error { return errIgnored }), errIgnored)
		}
		require.Equal(t, Closed, cb.State())
	})

	t.Run("reset closes", func(t *testing.T) {
		t.Parallel()
		cb := newTestBreaker(&fakeClock{t: time.Unix(0, 0)})
		for i := 0; i < 3; i++ {
			_ = cb.Call(failingService)
		}
		cb.Reset()
		require.Equal(t, Closed, cb.State())
		require.NoError(t, cb.Call(successfulService))
	})
}

func TestStatus_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "closed", Closed.String())
	require.Equal(t, "open", Open.String())
	require.Equal(t, "half-open", HalfOpen.String())
	require.Equal(t, "unknown", Status(0).String())
}
