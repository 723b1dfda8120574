package sigpac

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
)

// ParcelCache keeps aggregated parcels in memory with LRU eviction.
//
// Parcels are keyed by reference or query path. Memory use is estimated from
// the vertex and enclosure counts of each parcel; the least recently used
// parcels are evicted when the budget is exceeded.
//
// Example:
//
//	cache := sigpac.NewParcelCache(64 * 1024 * 1024) // 64MB
//
//	parcel, err := cache.Get(ref.String(), func() (*sigpac.Parcel, error) {
//	    body, err := client.Fetch(path)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return agg.AggregateGeoJSON(body)
//	})
type ParcelCache struct {
	maxMemory  int64 // bytes, 0 for unlimited
	usedMemory int64
	parcels    map[string]*parcelEntry
	lru        *list.List // most recent at front
	hits       int
	misses     int
	mu         sync.Mutex
}

type parcelEntry struct {
	key          string
	parcel       *Parcel
	memorySize   int64
	element      *list.Element
	lastAccessed time.Time
}

// NewParcelCache creates a cache holding at most maxMemoryBytes of parcels.
// Zero means unlimited.
func NewParcelCache(maxMemoryBytes int64) *ParcelCache {
	return &ParcelCache{
		maxMemory: maxMemoryBytes,
		parcels:   make(map[string]*parcelEntry),
		lru:       list.New(),
	}
}

// Get returns the cached parcel for key, calling loader on a miss.
//
// A parcel larger than the whole budget is returned but not cached. Loader
// errors are returned wrapped and nothing is cached.
func (c *ParcelCache) Get(key string, loader func() (*Parcel, error)) (*Parcel, error) {
	c.mu.Lock()
	if entry, ok := c.parcels[key]; ok {
		entry.lastAccessed = time.Now()
		c.lru.MoveToFront(entry.element)
		c.hits++
		c.mu.Unlock()
		return entry.parcel, nil
	}
	c.misses++
	c.mu.Unlock()

	parcel, err := loader()
	if err != nil {
		return nil, fmt.Errorf("load parcel %s: %w", key, err)
	}

	// Too large to cache; still usable.
	_ = c.Add(key, parcel)

	return parcel, nil
}

// Add stores parcel under key, evicting least recently used parcels to make
// room. It fails when the parcel alone exceeds the budget.
func (c *ParcelCache) Add(key string, parcel *Parcel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := estimateParcelMemory(parcel)

	if entry, ok := c.parcels[key]; ok {
		c.usedMemory += size - entry.memorySize
		entry.parcel = parcel
		entry.memorySize = size
		entry.lastAccessed = time.Now()
		c.lru.MoveToFront(entry.element)
		c.evictOver(entry)
		return nil
	}

	if c.maxMemory > 0 && size > c.maxMemory {
		return fmt.Errorf("parcel too large for cache (%d bytes > %d bytes max)", size, c.maxMemory)
	}

	entry := &parcelEntry{
		key:          key,
		parcel:       parcel,
		memorySize:   size,
		lastAccessed: time.Now(),
	}
	entry.element = c.lru.PushFront(entry)
	c.parcels[key] = entry
	c.usedMemory += size
	c.evictOver(entry)

	return nil
}

// evictOver drops least recently used entries other than keep until the
// cache fits its budget. Must be called with c.mu held.
func (c *ParcelCache) evictOver(keep *parcelEntry) {
	if c.maxMemory <= 0 {
		return
	}
	for c.usedMemory > c.maxMemory {
		elem := c.lru.Back()
		if elem == nil || elem.Value.(*parcelEntry) == keep {
			return
		}
		c.removeElement(elem)
	}
}

func (c *ParcelCache) removeElement(elem *list.Element) {
	entry := elem.Value.(*parcelEntry)
	c.lru.Remove(elem)
	delete(c.parcels, entry.key)
	c.usedMemory -= entry.memorySize
}

// Remove drops key from the cache.
func (c *ParcelCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.parcels[key]; ok {
		c.removeElement(entry.element)
	}
}

// Clear empties the cache. Hit and miss counters are kept.
func (c *ParcelCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.parcels = make(map[string]*parcelEntry)
	c.lru.Init()
	c.usedMemory = 0
}

// Stats returns cache statistics.
func (c *ParcelCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		ParcelCount: len(c.parcels),
		UsedMemory:  c.usedMemory,
		MaxMemory:   c.maxMemory,
		Hits:        c.hits,
		Misses:      c.misses,
	}
}

// CacheStats holds cache metrics.
type CacheStats struct {
	ParcelCount int   // Parcels currently cached
	UsedMemory  int64 // Estimated bytes in use
	MaxMemory   int64 // Budget in bytes, 0 for unlimited
	Hits        int
	Misses      int
}

// estimateParcelMemory approximates the size of a parcel:
//   - 512 bytes of fixed overhead
//   - 16 bytes per geometry vertex
//   - 256 bytes per enclosure query record and land-use entry
func estimateParcelMemory(p *Parcel) int64 {
	if p == nil {
		return 0
	}

	size := int64(512)
	size += int64(vertexCount(p.geometry)) * 16
	size += int64(len(p.summary.Query)+len(p.summary.LandUses)) * 256
	return size
}

func vertexCount(g orb.Geometry) int {
	n := 0
	switch v := g.(type) {
	case orb.Polygon:
		for _, r := range v {
			n += len(r)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			n += vertexCount(poly)
		}
	}
	return n
}
