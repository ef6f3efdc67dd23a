package display

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"phrasebot/phrases"
)

// Redis keeps each element as a string key under a common prefix.
type Redis struct {
	dial   func(ctx context.Context) (redis.Conn, error)
	prefix string
}

func NewRedis(addr, prefix string) *Redis {
	return &Redis{
		dial: func(ctx context.Context) (redis.Conn, error) {
			if addr == "" {
				return redis.DialContext(ctx, "tcp", ":6379")
			}
			return redis.DialURLContext(ctx, addr, redis.DialReadTimeout(2*time.Second))
		},
		prefix: prefix,
	}
}

func (r *Redis) key(id string) string {
	return r.prefix + id
}

func (r *Redis) Element(ctx context.Context, id string) (phrases.Element, error) {
	c, err := r.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dialing redis: %w", err)
	}
	defer c.Close()

	exists, err := redis.Bool(redis.DoContext(c, ctx, "EXISTS", r.key(id)))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, phrases.ErrTargetNotFound
	}
	return &redisElement{surface: r, key: r.key(id)}, nil
}

func (r *Redis) Create(ctx context.Context, id string) (string, error) {
	c, err := r.dial(ctx)
	if err != nil {
		return "", fmt.Errorf("dialing redis: %w", err)
	}
	defer c.Close()

	if _, err := redis.DoContext(c, ctx, "SET", r.key(id), "", "NX"); err != nil {
		return "", err
	}
	return id, nil
}

func (r *Redis) Text(ctx context.Context, id string) (string, error) {
	c, err := r.dial(ctx)
	if err != nil {
		return "", fmt.Errorf("dialing redis: %w", err)
	}
	defer c.Close()

	s, err := redis.String(redis.DoContext(c, ctx, "GET", r.key(id)))
	if err == redis.ErrNil {
		return "", phrases.ErrTargetNotFound
	}
	return s, err
}

type redisElement struct {
	surface *Redis
	key     string
}

func (e *redisElement) SetText(ctx context.Context, text string) error {
	if e == nil {
		return phrases.ErrTargetNotFound
	}
	c, err := e.surface.dial(ctx)
	if err != nil {
		return fmt.Errorf("dialing redis: %w", err)
	}
	defer c.Close()

	// XX keeps a deleted element deleted.
	reply, err := redis.DoContext(c, ctx, "SET", e.key, text, "XX")
	if err != nil {
		return err
	}
	if reply == nil {
		return phrases.ErrTargetNotFound
	}
	return nil
}
