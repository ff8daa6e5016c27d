package court

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bearcourt/bear-court-api/models"
)

const (
	// debounceWindow rejects rapid repeat triggers for the same case
	debounceWindow = 5 * time.Second
	// rateLimitCooldown is how long adjudication stays locally rejected after
	// the provider throttles us
	rateLimitCooldown = 60 * time.Second
)

// Guard enforces the adjudication concurrency rules: at most one request in
// flight per case (a new trigger cancels the previous one), a debounce window
// between triggers, and a cooldown after provider throttling.
type Guard struct {
	mu       sync.Mutex
	entries  map[string]*guardEntry
	debounce time.Duration
	cooldown time.Duration
	now      func() time.Time
}

type guardEntry struct {
	seq           uint64
	cancel        context.CancelFunc
	lastTrigger   time.Time
	cooldownUntil time.Time
}

// NewGuard returns a guard with the default debounce and cooldown windows
func NewGuard() *Guard {
	return &Guard{
		entries:  make(map[string]*guardEntry),
		debounce: debounceWindow,
		cooldown: rateLimitCooldown,
		now:      time.Now,
	}
}

// Begin reserves the adjudication slot for caseID. On success it returns a
// context that is cancelled if a newer trigger supersedes this one, plus a
// release func the caller must invoke with the attempt's result error when
// the attempt finishes. Triggers inside the cooldown or debounce window are
// rejected without touching the provider.
func (g *Guard) Begin(ctx context.Context, caseID string) (context.Context, func(error), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := g.entries[caseID]
	if e == nil {
		e = &guardEntry{}
		g.entries[caseID] = e
	}

	now := g.now()
	if now.Before(e.cooldownUntil) {
		wait := e.cooldownUntil.Sub(now).Round(time.Second)
		return nil, nil, models.NewAPIError(models.ErrAdjudicationRateLimited,
			fmt.Sprintf("the oracle is cooling down, retry in %s", wait), nil)
	}
	if !e.lastTrigger.IsZero() && now.Sub(e.lastTrigger) < g.debounce {
		return nil, nil, models.NewAPIError(models.ErrPreconditionFailed,
			"adjudication was requested a moment ago, hold on", nil)
	}

	// a newer trigger supersedes whatever is still in flight
	if e.cancel != nil {
		e.cancel()
	}

	cctx, cancel := context.WithCancel(ctx)
	e.seq++
	seq := e.seq
	e.cancel = cancel
	e.lastTrigger = now

	release := func(resultErr error) {
		g.mu.Lock()
		if cur := g.entries[caseID]; cur != nil && cur.seq == seq {
			cur.cancel = nil
			// a failed attempt must not debounce the user's immediate retry;
			// throttling keeps its own cooldown window
			if resultErr != nil && models.KindOf(resultErr) != models.ErrAdjudicationRateLimited {
				cur.lastTrigger = time.Time{}
			}
		}
		g.mu.Unlock()
		cancel()
	}
	return cctx, release, nil
}

// ReportRateLimited starts the cooldown window for caseID after a provider
// throttle response
func (g *Guard) ReportRateLimited(caseID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := g.entries[caseID]
	if e == nil {
		e = &guardEntry{}
		g.entries[caseID] = e
	}
	e.cooldownUntil = g.now().Add(g.cooldown)
}
