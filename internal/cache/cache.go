package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client. Unlike a read-through cache, the values held
// here (pending verification codes) have no durable fallback, so errors are
// returned to the caller instead of being swallowed.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping verifies connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the value for key. The second return is false when the key is
// absent or expired.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return res, true, nil
}

// Set stores value under key with a TTL, overwriting any prior value.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// compareAndDelete deletes the key only when its value equals the candidate,
// as a single server-side operation. Two concurrent matches cannot both win.
var compareAndDelete = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CompareAndDelete atomically checks that key holds expected and deletes it.
// Returns true exactly once per stored value.
func (c *Client) CompareAndDelete(ctx context.Context, key, expected string) (bool, error) {
	res, err := compareAndDelete.Run(ctx, c.client, []string{key}, expected).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
