// Package cache stores built responses in Redis.
//
// The cache manager keeps whole respond.Response values at rest, with
// storage TTLs driven by the freshness headers the builder itself
// emitted:
//
// - max-age (the builder's lowercase seconds header) takes precedence
// - Expires is honored when no max-age is present
// - Cache-Control no-store/no-cache makes an entry unstorable
// - responses without any cache headers get a short default TTL
//
// # Basic Usage
//
//	// Create Redis client
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	// Create cache manager
//	manager := cache.NewManager(redisClient)
//
//	// Key a stored response by route
//	key := cache.Key{
//		Route: "/pages/welcome",
//		Query: url.Values{"lang": []string{"en"}},
//	}
//
//	// Get from cache
//	entry, err := manager.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		resp := respond.New().WithCache("+1 day").WithBody(page).Build()
//		entry, _ = cache.FromResponse(resp)
//		_ = manager.Set(ctx, key, entry)
//	}
//
// All operations record Prometheus metrics (hits, misses, size, errors).
package cache
