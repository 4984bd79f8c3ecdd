// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Uploads: Directory names of the public static-asset tree.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "heritage-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Multipart image uploads need headroom here.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

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

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # Uploads

const (
	// MaxMultipartMemory is the in-memory buffer ceiling for multipart parsing;
	// larger files spill to temporary disk storage.
	MaxMultipartMemory = 32 << 20

	// Subdirectories of the public upload tree, keyed by resource type.
	UploadDirTraditionImages   = "tradition-images"
	UploadDirTraditionFiles    = "tradition-policy-files"
	UploadDirCreativeImages    = "creative-activity-images"
	UploadDirCreativeFiles     = "creative-activity-report-files"
	UploadDirEthnicImages      = "ethnic-group-images"
	UploadDirEthnicFiles       = "ethnic-group-files"
	UploadDirPolicyImages      = "public-policy-images"
	UploadDirPolicyFiles       = "public-policy-files"
)

// # JSON Field Identifiers

const (
	FieldSuccess = "success"
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaContent = "content"
	SchemaRef     = "ref"
)

// # Redis Prefixes

const (
	// RedisPrefixRevokedToken marks admin JWTs that were revoked before expiry.
	RedisPrefixRevokedToken = "auth:revoked:"
)
