package court

import (
	"sync"

	"github.com/bearcourt/bear-court-api/models"
)

// subscriptionBuffer bounds how far a slow consumer may fall behind before
// snapshots are dropped for it
const subscriptionBuffer = 8

// Broker fans case snapshots out to subscribers. Every successful mutation
// publishes the fresh snapshot, so a subscriber sees the document history in
// write order without polling.
type Broker struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

// Subscription is one subscriber's feed of case snapshots. The channel is
// closed on Cancel.
type Subscription struct {
	C      chan models.Case
	broker *Broker
	caseID string
	once   sync.Once
}

// NewBroker returns an empty broker
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers interest in a case and returns the snapshot feed
func (b *Broker) Subscribe(caseID string) *Subscription {
	sub := &Subscription{
		C:      make(chan models.Case, subscriptionBuffer),
		broker: b,
		caseID: caseID,
	}

	b.mu.Lock()
	if b.subs[caseID] == nil {
		b.subs[caseID] = make(map[*Subscription]struct{})
	}
	b.subs[caseID][sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Cancel removes the subscription and closes its channel. Safe to call twice.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		b := s.broker
		b.mu.Lock()
		if set := b.subs[s.caseID]; set != nil {
			delete(set, s)
			if len(set) == 0 {
				delete(b.subs, s.caseID)
			}
		}
		b.mu.Unlock()
		close(s.C)
	})
}

// Publish delivers a snapshot to every subscriber of the case. Slow consumers
// have the snapshot dropped rather than blocking the write path; they catch up
// on the next publish.
func (b *Broker) Publish(snapshot models.Case) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs[snapshot.ID] {
		select {
		case sub.C <- snapshot:
		default:
		}
	}
}

// Sweep prunes empty case entries and reports the current fan-out size
func (b *Broker) Sweep() (cases, subscribers int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for caseID, set := range b.subs {
		if len(set) == 0 {
			delete(b.subs, caseID)
			continue
		}
		subscribers += len(set)
	}
	return len(b.subs), subscribers
}
