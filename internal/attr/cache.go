package attr

import "github.com/funvibe/javac-core/internal/tree"

// Cache is the insertion-ordered `UniquePos -> *ArgumentType` store from
// spec §4.7 step 3/§5's ordering guarantee ("argument-type caching uses
// insertion-ordered maps so that iteration of speculative results is
// stable"). Kept as a map plus a parallel order slice rather than reaching
// for a third-party ordered-map library: this is pure bookkeeping
// internal to one compilation, not a concern any pack dependency
// addresses (justified stdlib use, see DESIGN.md).
type Cache struct {
	entries map[UniquePos]*ArgumentType
	order   []UniquePos
}

func NewCache() *Cache {
	return &Cache{entries: make(map[UniquePos]*ArgumentType)}
}

// Classify looks up or creates the ArgumentType for (pos, expr), per spec
// §4.7 steps 1-2. A duplicate key (the same position re-attributed, legal
// under retries per step 3) reuses the existing entry rather than
// reclassifying.
func (c *Cache) Classify(pos UniquePos, expr tree.Expression) *ArgumentType {
	if existing, ok := c.entries[pos]; ok {
		return existing
	}
	at := newArgumentType(pos, ClassifyArgument(expr), expr)
	c.entries[pos] = at
	c.order = append(c.order, pos)
	return at
}

// Remove deletes the cached entry for pos, the step 5 "completion removes
// the cached entry" behavior: once an enclosing deferred-attribution
// context finishes and writes the final type to the tree, the speculative
// entry is no longer needed.
func (c *Cache) Remove(pos UniquePos) {
	if _, ok := c.entries[pos]; !ok {
		return
	}
	delete(c.entries, pos)
	for i, p := range c.order {
		if p == pos {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// InOrder returns every still-cached ArgumentType in insertion order.
func (c *Cache) InOrder() []*ArgumentType {
	out := make([]*ArgumentType, 0, len(c.order))
	for _, p := range c.order {
		if at, ok := c.entries[p]; ok {
			out = append(out, at)
		}
	}
	return out
}

// LocalCacheContext is a scoped acquire/release of a fresh Cache, per spec
// §4.7 step 2 / §5 ("LocalCacheContext.leave() restores the previous
// cache - an implementer must treat this as a scoped acquisition with
// guaranteed release on all exit paths, including failure"). Used both
// for whole-argument speculative attribution and for the method-reference
// qualifier's isolated sub-attribution (spec §4.7's method-reference
// special case).
type LocalCacheContext struct {
	previous *Cache
	owner    *Attributor
}

// Enter installs a fresh Cache as a's active cache, returning a context
// whose Leave restores the previous one. Callers must defer Leave
// immediately after Enter to guarantee release on every exit path:
//
//	lc := attributor.EnterLocalCache()
//	defer lc.Leave()
func (a *Attributor) EnterLocalCache() *LocalCacheContext {
	lc := &LocalCacheContext{previous: a.cache, owner: a}
	a.cache = NewCache()
	return lc
}

// Leave restores the cache that was active before the matching Enter
// call. Calling Leave more than once is a no-op (idempotent release).
func (lc *LocalCacheContext) Leave() {
	if lc.owner == nil {
		return
	}
	lc.owner.cache = lc.previous
	lc.owner = nil
}
