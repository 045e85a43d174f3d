// Package redis builds a go-redis client from a redis:// or rediss:// URL.
package redis

import (
	"context"
	"crypto/tls"
	"net/url"
	"strconv"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := parseRedisURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

func parseRedisURL(redisURL string) (*redis.Options, error) {
	u, err := url.Parse(redisURL)
	if err != nil {
		return nil, err
	}

	opts := &redis.Options{
		Addr: u.Host,
	}

	if u.User != nil {
		if password, ok := u.User.Password(); ok {
			opts.Password = password
		}
		if u.User.Username() != "" {
			opts.Username = u.User.Username()
		}
	}

	if u.Path != "" && u.Path != "/" {
		if db, err := strconv.Atoi(u.Path[1:]); err == nil {
			opts.DB = db
		}
	}

	if u.Scheme == "rediss" {
		opts.TLSConfig = &tls.Config{
			ServerName: u.Hostname(),
		}
	}

	return opts, nil
}
