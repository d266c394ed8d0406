package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("redis unavailable")

// fakeClock 可手动推进的时钟
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBreaker(st Settings) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := New("item-cache", st)
	cb.now = clock.Now
	cb.resetWindow(clock.Now())
	return cb, clock
}

func fail() error    { return errUnavailable }
func succeed() error { return nil }

func TestCircuitBreaker_Closed(t *testing.T) {
	cb, _ := newBreaker(Settings{})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(succeed))
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_Trip(t *testing.T) {
	var transitions []string
	cb, _ := newBreaker(Settings{
		Timeout: 30 * time.Second,
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	t.Run("连续失败打开熔断器", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.ErrorIs(t, cb.Execute(fail), errUnavailable)
		}
		assert.Equal(t, StateOpen, cb.State())
		assert.Equal(t, []string{"CLOSED->OPEN"}, transitions)
	})

	t.Run("打开时不调用请求", func(t *testing.T) {
		called := false
		err := cb.Execute(func() error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ErrOpenState)
		assert.False(t, called)
	})
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	trip := func(cb *CircuitBreaker) {
		for i := 0; i < 5; i++ {
			_ = cb.Execute(fail)
		}
	}

	t.Run("超时后探测成功恢复", func(t *testing.T) {
		cb, clock := newBreaker(Settings{Timeout: 30 * time.Second})
		trip(cb)

		clock.Advance(31 * time.Second)
		assert.Equal(t, StateHalfOpen, cb.State())

		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败重新打开", func(t *testing.T) {
		cb, clock := newBreaker(Settings{Timeout: 30 * time.Second})
		trip(cb)

		clock.Advance(31 * time.Second)
		assert.ErrorIs(t, cb.Execute(fail), errUnavailable)
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("半开状态限制探测数", func(t *testing.T) {
		cb, clock := newBreaker(Settings{Timeout: time.Second, MaxRequests: 2})
		trip(cb)
		clock.Advance(2 * time.Second)

		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateHalfOpen, cb.State(), "需要连续2次成功才关闭")
		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_Interval(t *testing.T) {
	cb, clock := newBreaker(Settings{Interval: 10 * time.Second})

	for i := 0; i < 4; i++ {
		_ = cb.Execute(fail)
	}
	clock.Advance(11 * time.Second)

	// 窗口过期后计数清零，再失败一次不会熔断
	_ = cb.Execute(fail)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	errMiss := errors.New("miss")
	cb, _ := newBreaker(Settings{
		IsSuccessful: func(err error) bool { return err == nil || errors.Is(err, errMiss) },
	})

	for i := 0; i < 10; i++ {
		assert.ErrorIs(t, cb.Execute(func() error { return errMiss }), errMiss)
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(0), cb.Counts().TotalFailures)
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb, _ := newBreaker(Settings{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cb.Execute(succeed)
		}()
	}
	wg.Wait()
	assert.Equal(t, uint32(50), cb.Counts().Requests)
}

func TestCounts_FailureRate(t *testing.T) {
	assert.Equal(t, 0.0, Counts{}.FailureRate())
	assert.Equal(t, 0.25, Counts{Requests: 4, TotalFailures: 1}.FailureRate())
}
