package geocode

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

// venues lists the court types that are real, geocodable places.
// Pending and social entries are scheduling categories, not venues.
var venues = []court.Type{court.Shezi, court.Shuangyuan, court.Meiti}

// Resolver holds the current address annotation per venue. Construction
// seeds every venue with its fallback, so Address never blocks and never
// returns nothing; Warm upgrades the entries in the background.
type Resolver struct {
	client *Client // nil when no API key is configured
	cache  Cache

	mu               sync.RWMutex
	addresses        map[court.Type]Address
	needsCredentials bool
}

// NewResolver builds a resolver seeded with fallback annotations.
// client may be nil; cache must not be.
func NewResolver(client *Client, cache Cache) *Resolver {
	r := &Resolver{
		client:    client,
		cache:     cache,
		addresses: make(map[court.Type]Address, len(venues)),
	}
	for _, v := range venues {
		r.addresses[v] = Fallback(v.Name())
	}
	return r
}

// Warm resolves every venue, preferring cached entries. It is meant to run
// in a startup goroutine: fire and forget, no retries, failures logged and
// degraded to the seeded fallback.
func (r *Resolver) Warm(ctx context.Context) {
	for _, v := range venues {
		name := v.Name()

		if addr, ok := r.cache.Get(ctx, name); ok {
			r.store(v, addr)
			continue
		}
		if r.client == nil {
			continue
		}

		addr, err := r.client.Lookup(ctx, name)
		if err != nil {
			if errors.Is(err, ErrAPIKeyNotFound) {
				log.Printf("geocode: api key rejected, venue annotations degraded to fallback")
				r.setNeedsCredentials()
				return
			}
			log.Printf("geocode: lookup %s failed: %v, keeping fallback", name, err)
			continue
		}

		r.cache.Set(ctx, name, addr)
		r.store(v, addr)
	}
}

// Address returns the current annotation for a court type. Non-venue types
// degrade to a name-only fallback.
func (r *Resolver) Address(t court.Type) (address, mapURL string) {
	r.mu.RLock()
	addr, ok := r.addresses[t]
	r.mu.RUnlock()
	if !ok {
		addr = Fallback(t.Name())
	}
	return addr.Address, addr.URL
}

// NeedsCredentials reports whether the last warmup hit the credential
// failure, so the API can surface a key-selection prompt.
func (r *Resolver) NeedsCredentials() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.needsCredentials
}

func (r *Resolver) store(t court.Type, addr Address) {
	r.mu.Lock()
	r.addresses[t] = addr
	r.mu.Unlock()
}

func (r *Resolver) setNeedsCredentials() {
	r.mu.Lock()
	r.needsCredentials = true
	r.mu.Unlock()
}
