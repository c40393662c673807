package render

import "BezierBoard/internal/state"

// Cache memoizes the content layer of a curve set. Invalidate marks it dirty;
// the next Content call rebuilds it from scratch. A change of size also forces
// a rebuild since the bounds rectangle is part of the content.
type Cache struct {
	Style Style

	dirty  bool
	valid  bool
	size   Size
	layer  Layer
	builds int
}

// NewCache returns an empty cache that builds on first use.
func NewCache(style Style) *Cache {
	return &Cache{Style: style}
}

// Invalidate discards the memoized layer.
func (c *Cache) Invalidate() {
	c.dirty = true
}

// Content returns the content layer for curves at size sz, rebuilding it only
// when the cache is dirty or sz changed. rebuilt reports whether a rebuild
// happened, so backends can refresh anything derived from the layer.
func (c *Cache) Content(curves state.CurveSet, sz Size) (layer Layer, rebuilt bool) {
	if c.valid && !c.dirty && c.size == sz {
		return c.layer, false
	}
	c.layer = BuildContent(curves, sz, c.Style)
	c.size = sz
	c.valid = true
	c.dirty = false
	c.builds++
	return c.layer, true
}

// Builds returns how many times the layer has been rebuilt.
func (c *Cache) Builds() int { return c.builds }
