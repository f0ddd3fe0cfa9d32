package view

import (
	"sync"
	"time"
)

// BannerTTL is how long a transient message stays visible before it
// self-clears.
const BannerTTL = 5 * time.Second

// Banner holds the view's transient success and error messages. Each kind is
// single-slot: a new message replaces the previous one of the same kind.
// Messages expire after the TTL or on navigation away (Clear).
type Banner struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	success   string
	successAt time.Time
	failure   string
	failureAt time.Time
}

func NewBanner() *Banner {
	return &Banner{ttl: BannerTTL, now: time.Now}
}

// NewBannerAt builds a banner with an injected clock, for tests.
func NewBannerAt(ttl time.Duration, now func() time.Time) *Banner {
	return &Banner{ttl: ttl, now: now}
}

func (b *Banner) Success(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.success = msg
	b.successAt = b.now()
}

func (b *Banner) Error(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failure = msg
	b.failureAt = b.now()
}

// Clear drops both messages, as happens on navigation away from the view.
func (b *Banner) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.success = ""
	b.failure = ""
}

// Messages returns the currently visible success and error messages,
// dropping any that have expired.
func (b *Banner) Messages() (success, failure string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if b.success != "" && now.Sub(b.successAt) >= b.ttl {
		b.success = ""
	}
	if b.failure != "" && now.Sub(b.failureAt) >= b.ttl {
		b.failure = ""
	}
	return b.success, b.failure
}
