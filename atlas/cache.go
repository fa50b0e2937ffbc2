package atlas

import (
	"sync/atomic"

	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/cache"
	"github.com/gogpu/sdftext/internal/logging"
)

// CacheKey identifies an atlas. Two requests with equal keys share one
// atlas.
type CacheKey struct {
	Family        string
	Style         string
	Charset       string // normalized, see NormalizeCharset
	TextureWidth  int
	TextureHeight int
	TileWidth     int
	TileHeight    int
}

// KeyFor computes the cache key of an atlas without rendering it. The
// tile size requires decoding every glyph of the character set.
func KeyFor(face font.Face, format Format, charset string) CacheKey {
	return scanCharset(face, charset).key(face, format)
}

// Cache shares built atlases by key. It is safe for concurrent use; a
// given key is built at most once until Teardown.
type Cache struct {
	atlases *cache.Registry[CacheKey, *Atlas]
	builds  atomic.Int64
}

// NewCache creates an empty atlas cache.
func NewCache() *Cache {
	return &Cache{atlases: cache.New[CacheKey, *Atlas]()}
}

// GetOrBuild returns the cached atlas for the request or builds it.
func (c *Cache) GetOrBuild(face font.Face, format Format, charset string) (*Atlas, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	s := scanCharset(face, charset)
	key := s.key(face, format)
	a, created, err := c.atlases.GetOrCreate(key, func() (*Atlas, error) {
		return build(face, format, s)
	})
	if err != nil {
		return nil, err
	}
	if created {
		c.builds.Add(1)
		logging.Logger().Info("atlas: cache miss, built atlas",
			"family", key.Family, "style", key.Style,
			"chars", len(s.runes), "textures", len(a.textures))
	}
	return a, nil
}

// Len returns the number of cached atlases.
func (c *Cache) Len() int { return c.atlases.Len() }

// Builds returns how many atlases this cache has built.
func (c *Cache) Builds() int { return int(c.builds.Load()) }

// Keys returns the cached keys in build order.
func (c *Cache) Keys() []CacheKey { return c.atlases.Keys() }

// Teardown drops every cached atlas. Atlases already handed out stay
// valid.
func (c *Cache) Teardown() {
	c.atlases.Clear()
}

var defaultCache = NewCache()

// DefaultCache returns the process-wide atlas cache.
func DefaultCache() *Cache { return defaultCache }

// GetOrBuild looks the atlas up in the default cache.
func GetOrBuild(face font.Face, format Format, charset string) (*Atlas, error) {
	return defaultCache.GetOrBuild(face, format, charset)
}

// Teardown clears the default cache.
func Teardown() { defaultCache.Teardown() }
