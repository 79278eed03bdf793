package fetch

import (
	"errors"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var errCircuitOpen = errors.New("fetch: circuit open")

// breaker is a minimal circuit breaker for the outbound client: it opens
// after a run of consecutive failures and admits a probe again once the
// cooldown has passed. A single success closes it.
type breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	failures  int
	openUntil time.Time
}

func newBreaker(threshold int, cooldown time.Duration) *breaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &breaker{threshold: threshold, cooldown: cooldown}
}

// execute runs fn unless the breaker is open, recording the outcome.
func (b *breaker) execute(fn func() (*resty.Response, error)) (*resty.Response, error) {
	if !b.allow() {
		return nil, errCircuitOpen
	}
	resp, err := fn()
	b.record(err == nil)
	return resp, err
}

func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures < b.threshold || time.Now().After(b.openUntil)
}

func (b *breaker) record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if success {
		b.failures = 0
		return
	}
	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = time.Now().Add(b.cooldown)
	}
}

// open reports whether the breaker currently rejects requests.
func (b *breaker) open() bool { return !b.allow() }
