package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient opens the redis connection backing the rate limiters. No
// startup ping: the limiters fail open, so an unreachable redis degrades to
// unlimited traffic rather than blocking boot.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}
