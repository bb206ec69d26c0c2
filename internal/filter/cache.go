package filter

import "sync"

// Cached memoizes filter results for one immutable catalog. Results are
// keyed by the criteria fingerprint; because the catalog never changes for
// the life of the session, invalidation is total and never needed. This is
// a simplicity choice for small catalogs (tens to low hundreds of records),
// not a scalability claim.
type Cached[T any] struct {
	schema  *Schema[T]
	results map[string][]T
	catalog []T
	mu      sync.RWMutex
}

// NewCached wraps a schema and its catalog with a result memo.
func NewCached[T any](schema *Schema[T], catalog []T) *Cached[T] {
	return &Cached[T]{
		schema:  schema,
		catalog: catalog,
		results: make(map[string][]T),
	}
}

// Schema returns the underlying schema, for building criteria.
func (c *Cached[T]) Schema() *Schema[T] {
	return c.schema
}

// Catalog returns the full unfiltered catalog.
func (c *Cached[T]) Catalog() []T {
	return c.catalog
}

// Filter returns the records matching the criteria, recomputing only when
// this criteria fingerprint has not been seen before. Callers always get a
// fresh slice; mutating it cannot corrupt the memo.
func (c *Cached[T]) Filter(criteria *Criteria[T]) []T {
	fp := criteria.Fingerprint()

	c.mu.RLock()
	cached, ok := c.results[fp]
	c.mu.RUnlock()

	if !ok {
		cached = c.schema.Filter(c.catalog, criteria)
		c.mu.Lock()
		c.results[fp] = cached
		c.mu.Unlock()
	}

	out := make([]T, len(cached))
	copy(out, cached)
	return out
}

// Size returns the number of memoized results.
func (c *Cached[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
