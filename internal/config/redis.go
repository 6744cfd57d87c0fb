package config

// This file defines a Redis client constructor for the application. Redis
// holds the server-side session records keyed by hashed token; expiry is
// handled with Redis TTLs. The client parameters are loaded from
// environment variables. Unlike optional concerns, sessions cannot degrade
// gracefully, so callers should treat a nil client as a startup failure.

import (
	"context"
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//
//	REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//	REDIS_ADDR – host:port shorthand (takes precedence if both are set)
//	REDIS_PASSWORD – optional password
//	REDIS_DB – database number (default 0)
//	REDIS_TLS – enable TLS when "true" or "1"
//	REDIS_TLS_SKIP_VERIFY – accept any server certificate when "true" or "1"
//
// The returned client is nil if a connection cannot be established.
func NewRedisClient() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	addr := os.Getenv("REDIS_ADDR")
	if host != "" && port != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		addr = "localhost:6379"
	}
	pwd := os.Getenv("REDIS_PASSWORD")
	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}
	tlsConf := redisTLSConfig(os.Getenv("REDIS_TLS"), os.Getenv("REDIS_TLS_SKIP_VERIFY"))
	client := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  pwd,
		DB:        dbNum,
		TLSConfig: tlsConf,
	})
	// Ping the server with a short timeout. Return nil on failure.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// redisTLSConfig builds the TLS config from the REDIS_TLS and
// REDIS_TLS_SKIP_VERIFY values. Redis holds the authoritative session
// records, so the server certificate is verified by default; skipping
// verification is an explicit opt-in for self-signed development setups.
func redisTLSConfig(tlsEnv, skipVerifyEnv string) *tls.Config {
	if !envBool(tlsEnv) {
		return nil
	}
	return &tls.Config{InsecureSkipVerify: envBool(skipVerifyEnv)}
}

func envBool(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}
