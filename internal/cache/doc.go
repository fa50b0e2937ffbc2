// Package cache provides the permanent keyed registry behind the atlas,
// glyph metrics and shader caches.
//
// A Registry builds each value at most once per key and keeps it for the
// lifetime of the registry. There is no eviction: growth is bounded only
// by the number of distinct keys a program requests, and Clear is the
// explicit teardown hook.
//
//	reg := cache.New[string, *Atlas]()
//	a, built, err := reg.GetOrCreate(key, func() (*Atlas, error) {
//	    return build(key)
//	})
//
// Registry is safe for concurrent use. Creation runs under the registry
// lock, so concurrent requests for the same key wait for the first build.
package cache
