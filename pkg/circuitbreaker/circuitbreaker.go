// Package circuitbreaker 熔断器
//
// 状态转换：
//
//	CLOSED --失败达到阈值--> OPEN --Timeout后--> HALF_OPEN --探测成功--> CLOSED
//	                                              HALF_OPEN --探测失败--> OPEN
//
// 商品缓存用它包裹Redis调用：Redis不可用时快速失败，请求直接回源数据库
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	// StateClosed 正常放行，统计失败次数
	StateClosed State = iota
	// StateOpen 全部快速失败
	StateOpen
	// StateHalfOpen 放行少量探测请求
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开
var ErrOpenState = errors.New("circuit breaker is open")

// Settings 熔断器配置
type Settings struct {
	// MaxRequests 半开状态允许的探测请求数，0按1处理
	MaxRequests uint32

	// Interval CLOSED状态的统计窗口，0表示不按窗口清零
	Interval time.Duration

	// Timeout OPEN状态持续时间
	Timeout time.Duration

	// ReadyToTrip 返回true时打开熔断器，默认连续失败5次
	ReadyToTrip func(counts Counts) bool

	// IsSuccessful 判断一次调用是否算成功，默认err==nil
	// 业务上的"未命中"等错误不应计入失败
	IsSuccessful func(err error) bool

	// OnStateChange 状态变化回调(持锁调用，不要在回调中访问熔断器)
	OnStateChange func(name string, from, to State)
}

// Counts 统计窗口内的计数
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// FailureRate 失败率
func (c Counts) FailureRate() float64 {
	if c.Requests == 0 {
		return 0
	}
	return float64(c.TotalFailures) / float64(c.Requests)
}

func (c *Counts) onSuccess() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) onFailure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// CircuitBreaker 熔断器，可并发使用
type CircuitBreaker struct {
	name         string
	maxRequests  uint32
	interval     time.Duration
	timeout      time.Duration
	readyToTrip  func(Counts) bool
	isSuccessful func(error) bool
	onChange     func(string, State, State)
	now          func() time.Time

	mu         sync.Mutex
	state      State
	generation uint64
	counts     Counts
	expiry     time.Time
}

// New 创建熔断器
func New(name string, st Settings) *CircuitBreaker {
	cb := &CircuitBreaker{
		name:         name,
		maxRequests:  st.MaxRequests,
		interval:     st.Interval,
		timeout:      st.Timeout,
		readyToTrip:  st.ReadyToTrip,
		isSuccessful: st.IsSuccessful,
		onChange:     st.OnStateChange,
		now:          time.Now,
	}
	if cb.maxRequests == 0 {
		cb.maxRequests = 1
	}
	if cb.timeout <= 0 {
		cb.timeout = 30 * time.Second
	}
	if cb.readyToTrip == nil {
		cb.readyToTrip = func(c Counts) bool { return c.ConsecutiveFailures >= 5 }
	}
	if cb.isSuccessful == nil {
		cb.isSuccessful = func(err error) bool { return err == nil }
	}
	cb.resetWindow(cb.now())
	return cb
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string { return cb.name }

// Execute 在熔断器保护下执行req
// 熔断器打开时不调用req，直接返回ErrOpenState
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}
	err = req()
	cb.afterRequest(generation, cb.isSuccessful(err))
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	state, _ := cb.currentState(cb.now())
	return state
}

// Counts 当前统计
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.counts
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(cb.now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && cb.counts.Requests >= cb.maxRequests:
		return generation, ErrOpenState
	}
	cb.counts.Requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	state, generation := cb.currentState(now)
	// 期间状态已切换，结果不计入新窗口
	if generation != before {
		return
	}

	if success {
		cb.counts.onSuccess()
		if state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.maxRequests {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.onFailure()
	switch state {
	case StateClosed:
		if cb.readyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.resetWindow(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state

	switch state {
	case StateClosed:
		cb.resetWindow(now)
	case StateOpen:
		cb.generation++
		cb.counts = Counts{}
		cb.expiry = now.Add(cb.timeout)
	case StateHalfOpen:
		cb.generation++
		cb.counts = Counts{}
		cb.expiry = time.Time{}
	}

	if cb.onChange != nil {
		cb.onChange(cb.name, prev, state)
	}
}

// resetWindow 开启新的统计窗口
func (cb *CircuitBreaker) resetWindow(now time.Time) {
	cb.generation++
	cb.counts = Counts{}
	if cb.interval > 0 {
		cb.expiry = now.Add(cb.interval)
	} else {
		cb.expiry = time.Time{}
	}
}
