package dictionary

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"
)

// DefaultCacheSize bounds the per-session lookup cache.
const DefaultCacheSize = 4096

// DefaultLookupTimeout bounds a single provider call.
const DefaultLookupTimeout = 5 * time.Second

// Gateway wraps a Lookup provider with a session-lifetime cache and a
// bounded per-call timeout. Repeated lookups of the same word are
// idempotent and never hit the provider twice. Unavailability is not
// cached, so a later retry can still succeed.
type Gateway struct {
	provider Lookup
	cache    *lru.Cache
	timeout  time.Duration
}

// NewGateway wraps a provider. A timeout of 0 means DefaultLookupTimeout.
func NewGateway(provider Lookup, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	cache, err := lru.New(DefaultCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &Gateway{provider: provider, cache: cache, timeout: timeout}
}

func (g *Gateway) Name() string {
	return g.provider.Name()
}

// Lookup implements the Lookup interface, so gateways can be stacked or
// passed anywhere a provider is expected.
func (g *Gateway) Lookup(ctx context.Context, word string) (*Entry, error) {
	key := strings.ToUpper(strings.TrimSpace(word))
	if cached, ok := g.cache.Get(key); ok {
		return cached.(*Entry), nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	entry, err := g.provider.Lookup(ctx, word)
	if err != nil {
		log.Warn().Str("word", key).Str("provider", g.provider.Name()).
			Err(err).Msg("dictionary lookup failed")
		return nil, err
	}
	g.cache.Add(key, entry)
	return entry, nil
}

// IsValidWord is a convenience wrapper that collapses the entry to a
// boolean; an unavailability error still comes through distinctly.
func (g *Gateway) IsValidWord(ctx context.Context, word string) (bool, error) {
	entry, err := g.Lookup(ctx, word)
	if err != nil {
		return false, err
	}
	return entry.Valid, nil
}
