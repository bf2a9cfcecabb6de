package options_cache

import (
	"sync"
	"time"

	"github.com/houranii/tyreshop/models"
)

const TTL = 5 * time.Minute

// Cache holds derived views of one catalog, keyed by that catalog's
// version. Each catalog owns its own Cache; versions of different
// catalogs are not comparable.
type Cache struct {
	optsMu sync.RWMutex
	opts   *optionsEntry

	featMu sync.RWMutex
	feat   *featuredEntry
}

func New() *Cache {
	return &Cache{}
}

// ── Unconstrained filter options ─────────────────────────────────────────────
// Every storefront Reset and the options endpoint read from this.

type optionsEntry struct {
	version   uint64
	options   models.FilterOptions
	fetchedAt time.Time
}

func (c *Cache) GetOptions(version uint64) (models.FilterOptions, bool) {
	c.optsMu.RLock()
	defer c.optsMu.RUnlock()
	if c.opts != nil && c.opts.version == version && time.Since(c.opts.fetchedAt) < TTL {
		return c.opts.options, true
	}
	return models.FilterOptions{}, false
}

func (c *Cache) SetOptions(version uint64, options models.FilterOptions) {
	c.optsMu.Lock()
	defer c.optsMu.Unlock()
	c.opts = &optionsEntry{version: version, options: options, fetchedAt: time.Now()}
}

// ── Featured tyres ───────────────────────────────────────────────────────────

type featuredEntry struct {
	version   uint64
	data      []models.Tyre
	fetchedAt time.Time
}

func (c *Cache) GetFeatured(version uint64) ([]models.Tyre, bool) {
	c.featMu.RLock()
	defer c.featMu.RUnlock()
	if c.feat != nil && c.feat.version == version && time.Since(c.feat.fetchedAt) < TTL {
		return c.feat.data, true
	}
	return nil, false
}

func (c *Cache) SetFeatured(version uint64, data []models.Tyre) {
	c.featMu.Lock()
	defer c.featMu.Unlock()
	c.feat = &featuredEntry{version: version, data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (hooked to every catalog publish) ─────────────────

func (c *Cache) Invalidate() {
	c.optsMu.Lock()
	c.opts = nil
	c.optsMu.Unlock()

	c.featMu.Lock()
	c.feat = nil
	c.featMu.Unlock()
}
