package vision

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/knitworks/pattern-analyzer/constants"
)

// fallbackModels is the hardwired candidate list used when the discovery
// endpoint is unreachable. Ordered by preference.
var fallbackModels = []string{
	"claude-3-5-sonnet-20241022",
	"claude-3-5-sonnet-20240620",
	"claude-3-sonnet-20240229",
	"claude-3-haiku-20240307",
	"claude-3-opus-20240229",
}

// ModelInfo is the slice of the provider's model listing the catalog needs.
type ModelInfo struct {
	ID        string
	CreatedAt time.Time
}

// ModelLister fetches the provider's current model listing.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Catalog caches the provider's model listing and ranks it for pattern
// analysis. Discovery failures fall back to the hardwired list, so Models
// never returns an empty slice.
type Catalog struct {
	lister ModelLister
	ttl    time.Duration
	log    *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	cached    []string
	fetchedAt time.Time
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithCatalogClock overrides the wall clock, for tests.
func WithCatalogClock(now func() time.Time) CatalogOption {
	return func(c *Catalog) { c.now = now }
}

func NewCatalog(lister ModelLister, logger *slog.Logger, opts ...CatalogOption) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		lister: lister,
		ttl:    constants.ModelCacheTTL,
		log:    logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Models returns the ranked candidate list, refreshing the cache when it
// has gone stale.
func (c *Catalog) Models(ctx context.Context) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.cached) > 0 && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.cached
	}
	return c.refreshLocked(ctx)
}

// Refresh drops the cache and refetches immediately.
func (c *Catalog) Refresh(ctx context.Context) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *Catalog) refreshLocked(ctx context.Context) []string {
	infos, err := c.lister.ListModels(ctx)
	if err != nil {
		c.log.Warn("vision.models.fallback", "error", err)
		if len(c.cached) > 0 {
			return c.cached
		}
		return fallbackModels
	}

	ranked := rankModels(infos)
	if len(ranked) == 0 {
		c.log.Warn("vision.models.empty")
		return fallbackModels
	}

	c.cached = ranked
	c.fetchedAt = c.now()
	c.log.Info("vision.models.refreshed", "models", len(ranked), "preferred", ranked[0])
	return ranked
}

// rankModels filters the listing down to vision-capable models and orders
// them: sonnet family first, then newest release first within each group.
func rankModels(infos []ModelInfo) []string {
	capable := make([]ModelInfo, 0, len(infos))
	for _, m := range infos {
		if visionCapable(m.ID) {
			capable = append(capable, m)
		}
	}

	sort.SliceStable(capable, func(i, j int) bool {
		si, sj := isSonnet(capable[i].ID), isSonnet(capable[j].ID)
		if si != sj {
			return si
		}
		return capable[i].CreatedAt.After(capable[j].CreatedAt)
	})

	out := make([]string, len(capable))
	for i, m := range capable {
		out[i] = m.ID
	}
	return out
}

func visionCapable(id string) bool {
	id = strings.ToLower(id)
	return strings.Contains(id, "claude-3") ||
		strings.Contains(id, "sonnet") ||
		strings.Contains(id, "haiku") ||
		strings.Contains(id, "opus")
}

func isSonnet(id string) bool {
	return strings.Contains(strings.ToLower(id), "sonnet")
}
