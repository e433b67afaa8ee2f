// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and cookie configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "inkpress-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous enough for multipart image uploads on slow links.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle,
	// covering the database round-trip and any asset-host upload.
	GlobalRequestTimeout = 60 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "inkpress.app"

	// TokenCookieName is the cookie that carries the bearer token for
	// browser clients. The Authorization header takes precedence over it.
	TokenCookieName = "token"

	// DefaultTokenTTL is the bearer token lifetime when TOKEN_TTL is not set.
	// Tokens are stateless and never revoked before natural expiry.
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// # Uploads

const (
	// MaxUploadMemory caps the in-memory portion of multipart form parsing.
	MaxUploadMemory = 8 << 20 // 8 MiB

	// MaxUploadBytes is the hard limit for a single uploaded image.
	MaxUploadBytes = 10 << 20 // 10 MiB
)

// # Database Schemas

const (
	SchemaCore  = "core"
	SchemaUsers = "users"
	SchemaSite  = "site"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCategoryList = "core:categories:all"
)
