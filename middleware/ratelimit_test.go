package middleware

import (
	"testing"
	"time"
)

func TestEvictIdleKeepsActiveVisitors(t *testing.T) {
	rl := NewRateLimiter()

	active := rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")
	rl.mu.Lock()
	rl.visitors["10.0.0.2"].lastSeen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.evictIdle(10 * time.Minute)

	rl.mu.Lock()
	_, idleKept := rl.visitors["10.0.0.2"]
	rl.mu.Unlock()
	if idleKept {
		t.Fatal("idle visitor should have been evicted")
	}
	if rl.getLimiter("10.0.0.1") != active {
		t.Fatal("active visitor lost its limiter across eviction")
	}
}

func TestActiveVisitorKeepsSpentBudget(t *testing.T) {
	rl := NewRateLimiter()

	limiter := rl.getLimiter("10.0.0.3")
	for limiter.Allow() {
	}

	rl.evictIdle(10 * time.Minute)

	if rl.getLimiter("10.0.0.3").Allow() {
		t.Fatal("exhausted visitor got a fresh burst after cleanup")
	}
}
