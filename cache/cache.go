package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/mapfilefs/bstree"
	"github.com/npillmayer/mapfilefs/buffer"
	"github.com/npillmayer/mapfilefs/dllist"
	"github.com/npillmayer/mapfilefs/nodepool"
)

// Generator produces the map file for map id into buf.
type Generator func(id int, buf *buffer.Buffer) error

// Cache is a cache of generated map files.
type Cache struct {
	mu        sync.Mutex
	cfg       Config
	gen       Generator
	index     *bstree.Tree[*Entry] // lookup by ID
	listing   *dllist.List[*Entry] // enumeration, sorted on demand
	unsorted  bool                 // listing is not in ID order
	deletions int                  // evictions since last re-balancing
	cast      *caster.Caster       // broadcaster for cache events
	closed    bool
}

// New creates an empty cache, using gen to produce map files.
func New(cfg Config, gen Generator) (*Cache, error) {
	if gen == nil {
		return nil, fmt.Errorf("cache: generator must not be nil")
	}
	c := &Cache{cfg: cfg, gen: gen}
	if err := c.init(); err != nil {
		return nil, err
	}
	tracer().Debugf("cache: created with max. %d entries", cfg.MaxEntries)
	return c, nil
}

func (c *Cache) init() (err error) {
	c.index, err = bstree.New(bstree.Config[*Entry]{
		Compare:  Compare,
		Free:     Release,
		Dup:      Duplicate,
		FreeList: nodepool.New[bstree.Node[*Entry]](nodepool.DefaultSize, c.cfg.MaxEntries),
	})
	if err != nil {
		return err
	}
	c.listing = dllist.NewWithFreeList(nodepool.New[dllist.Node[*Entry]](nodepool.DefaultSize, 0))
	c.cast = caster.New(nil)
	return nil
}

// Config returns the configuration of c.
func (c *Cache) Config() Config {
	return c.cfg
}

// Len returns the number of cached entries, including expired ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.Len()
}

func (c *Cache) find(id int) *Entry {
	if node := c.index.Find(&Entry{ID: id}); node != nil {
		return node.Payload()
	}
	return nil
}

// Get returns the map file for map id. If id is not cached or its entry has
// expired, the map file is generated. Generator errors are wrapped into
// ErrGenerate; an entry which fails to generate keeps its previous state.
// If the cache is full, Get returns an error wrapping bstree.ErrAllocation.
func (c *Cache) Get(id int) (string, error) {
	return c.fetch(id, false)
}

// GetCached is like Get, but does not create entries: if id is not cached,
// GetCached returns an error wrapping ErrUnknownEntry. Expired entries are
// re-generated.
func (c *Cache) GetCached(id int) (string, error) {
	return c.fetch(id, true)
}

func (c *Cache) fetch(id int, cachedOnly bool) (string, error) {
	c.mu.Lock()
	text, generated, err := c.get(id, cachedOnly)
	c.mu.Unlock()
	if generated {
		c.cast.Pub(Event{Kind: Generated, ID: id})
	}
	return text, err
}

func (c *Cache) get(id int, cachedOnly bool) (string, bool, error) {
	if c.closed {
		return "", false, ErrClosed
	}
	entry := c.find(id)
	if entry == nil && cachedOnly {
		return "", false, fmt.Errorf("%w: map #%d", ErrUnknownEntry, id)
	}
	if entry != nil && !entry.Expired {
		return entry.Text.String(), false, nil
	}
	buf := &buffer.Buffer{}
	if err := c.gen(id, buf); err != nil {
		tracer().Errorf("cache: map #%d: %v", id, err)
		return "", false, fmt.Errorf("%w: map #%d: %w", ErrGenerate, id, err)
	}
	if entry == nil {
		entry = &Entry{ID: id, Text: buf}
		if err := c.insert(entry); err != nil {
			return "", false, err
		}
		tracer().Debugf("cache: map #%d generated, %d bytes", id, buf.Len())
	} else {
		entry.Text, entry.Expired = buf, false
		tracer().Debugf("cache: map #%d re-generated, %d bytes", id, buf.Len())
	}
	return buf.String(), true, nil
}

func (c *Cache) insert(entry *Entry) error {
	if _, err := c.index.Insert(entry); err != nil {
		return fmt.Errorf("cache: cannot hold map #%d: %w", entry.ID, err)
	}
	if tail := c.listing.Tail(); tail != nil && tail.Payload().ID > entry.ID {
		c.unsorted = true
	}
	if _, err := c.listing.Append(entry); err != nil {
		c.index.Delete(c.index.Find(entry))
		return err
	}
	return nil
}

// Lookup returns a copy of the entry for map id, without generating it.
func (c *Cache) Lookup(id int) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false
	}
	entry := c.find(id)
	if entry == nil {
		return nil, false
	}
	dup, _ := Duplicate(entry)
	return dup, true
}

// Expire marks the entry for map id as expired. It returns ErrUnknownEntry if
// id is not cached.
func (c *Cache) Expire(id int) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	entry := c.find(id)
	if entry != nil {
		entry.Expired = true
	}
	c.mu.Unlock()
	if entry == nil {
		return fmt.Errorf("%w: map #%d", ErrUnknownEntry, id)
	}
	c.cast.Pub(Event{Kind: Expired, ID: id})
	return nil
}

// ExpireAll marks all entries as expired.
func (c *Cache) ExpireAll() {
	c.mu.Lock()
	var ids []int
	if !c.closed {
		for entry := range c.listing.All() {
			if !entry.Expired {
				entry.Expired = true
				ids = append(ids, entry.ID)
			}
		}
	}
	c.mu.Unlock()
	for _, id := range ids {
		c.cast.Pub(Event{Kind: Expired, ID: id})
	}
}

// Evict removes all expired entries from the cache and returns their number.
// After Config.RebalanceAfter removals the index is re-balanced.
func (c *Cache) Evict() int {
	c.mu.Lock()
	var ids []int
	if !c.closed {
		_ = c.listing.Iterate(func(node *dllist.Node[*Entry], entry *Entry) error {
			if !entry.Expired {
				return nil
			}
			c.listing.Delete(node)
			c.index.Delete(c.index.Find(entry))
			Release(entry)
			ids = append(ids, entry.ID)
			return nil
		})
		c.deletions += len(ids)
		if c.cfg.RebalanceAfter > 0 && c.deletions >= c.cfg.RebalanceAfter {
			c.index.Balance()
			c.deletions = 0
		}
	}
	c.mu.Unlock()
	tracer().Debugf("cache: evicted %d entries", len(ids))
	for _, id := range ids {
		c.cast.Pub(Event{Kind: Evicted, ID: id})
	}
	return len(ids)
}

// Entries returns an iterator over a snapshot of all entries in ascending
// order of IDs. Entries share their text with the cache; clients must not
// modify it.
func (c *Cache) Entries() iter.Seq[*Entry] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func(func(*Entry) bool) {}
	}
	if c.unsorted {
		c.listing.Sort(Compare)
		c.unsorted = false
	}
	snapshot := make([]*Entry, 0, c.listing.Len())
	for entry := range c.listing.All() {
		e := *entry
		snapshot = append(snapshot, &e)
	}
	return slices.Values(snapshot)
}

// IDs returns the identifiers of all cached entries in ascending order.
func (c *Cache) IDs() []int {
	var ids []int
	for e := range c.Entries() {
		ids = append(ids, e.ID)
	}
	return ids
}

// Clone creates an independent copy of c, with the same configuration and
// generator.
func (c *Cache) Clone() (*Cache, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	clone := &Cache{cfg: c.cfg, gen: c.gen}
	if err := clone.init(); err != nil {
		return nil, err
	}
	if failed, err := clone.index.Copy(c.index, nil); err != nil {
		tracer().Errorf("cache: clone failed at map #%d", failed.Payload().ID)
		clone.Close()
		return nil, err
	}
	for entry := range clone.index.Ascend() {
		if _, err := clone.listing.Append(entry); err != nil {
			clone.Close()
			return nil, err
		}
	}
	return clone, nil
}

// Absorb moves all entries of other into c. Entries of other for maps
// already cached in c are dropped. If c becomes full, Absorb stops with an
// error wrapping bstree.ErrAllocation; entries not moved remain in other.
//
// Clients must not let two caches absorb each other concurrently.
func (c *Cache) Absorb(other *Cache) error {
	if other == nil || other == c {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()
	if c.closed || other.closed {
		return ErrClosed
	}
	_ = other.listing.Iterate(func(node *dllist.Node[*Entry], entry *Entry) error {
		if c.find(entry.ID) != nil {
			other.listing.Delete(node)
			other.index.Delete(other.index.Find(entry))
			Release(entry)
		}
		return nil
	})
	err := c.index.Move(other.index, nil)
	if err == nil {
		c.listing.AppendList(other.listing)
	} else {
		// partial move: take over listing entries which have left other's index
		var lost []error
		_ = other.listing.Iterate(func(node *dllist.Node[*Entry], entry *Entry) error {
			if other.index.Find(entry) != nil {
				return nil
			}
			other.listing.Delete(node)
			if _, aerr := c.listing.Append(entry); aerr != nil {
				// keep index and listing in sync
				c.index.Delete(c.index.Find(entry))
				Release(entry)
				lost = append(lost, fmt.Errorf("cache: map #%d dropped: %w", entry.ID, aerr))
			}
			return nil
		})
		if len(lost) > 0 {
			err = errors.Join(append([]error{err}, lost...)...)
		}
	}
	c.unsorted = true
	return err
}

// Subscribe returns a channel receiving cache events (of type Event) until
// ctx is done or the cache is closed. Subscribers have to drain their
// channel, as publishing blocks on full channels.
func (c *Cache) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return c.cast.Sub(ctx, c.cfg.EventBuffer)
}

// Close drops all entries and closes all subscriber channels. A closed cache
// cannot be used any more.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.listing.DeleteAll(nil)
	c.index.DeleteAll()
	c.cast.Close()
	tracer().Debugf("cache: closed")
}

// Dot writes the index of c in Graphviz DOT format.
func (c *Cache) Dot(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.Dot(w)
}

// Walk visits the entries of the index in pre-order, handing each entry and
// its depth (root at 0) to visit. It is meant for diagnostic output.
func (c *Cache) Walk(visit func(e *Entry, depth int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.index.PreOrder(false, func(node *bstree.Node[*Entry], entry *Entry) error {
		depth := 0
		for p := node.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		visit(entry, depth)
		return nil
	})
}
