package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps the Redis connection used for the token blacklist.
type Client struct {
	rdb *goredis.Client
}

func NewClient(addr, password string, db int) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("can't connect to redis: %w", err)
	}

	zap.L().Info("connected to redis", zap.String("addr", addr))
	return &Client{rdb: rdb}, nil
}

const blacklistPrefix = "token:blacklist:"

// BlacklistToken revokes a JWT id for the token's remaining lifetime.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
