// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Public Paths: Frontend routes and asset prefixes that the API links to.
  - Key-Value Prefixes: Namespaces for persisted visitor and gallery state.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "folio-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 15 * time.Second

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
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Public Paths

const (
	// PortfolioPathPrefix prefixes the generic project detail route.
	PortfolioPathPrefix = "/portfolio/"

	// CodeDetailPathPrefix prefixes detail routes for software projects.
	CodeDetailPathPrefix = "/portfolio/code/"

	// DesignDetailPathPrefix prefixes detail routes for professional design projects.
	DesignDetailPathPrefix = "/portfolio/arch-pro/"

	// CountryLogsPathPrefix prefixes the per-country travel log route.
	CountryLogsPathPrefix = "/logs/"

	// LogImagesBasePath is where log photos are served from.
	LogImagesBasePath = "/assets/logs/images/"

	// LogVideosBasePath is where log videos are served from.
	LogVideosBasePath = "/assets/logs/videos/"
)

// # Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"

	// HeaderXVisitorID carries the anonymous browser identity used for persisted UI state.
	HeaderXVisitorID = "X-Visitor-ID"
)

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Key-Value Prefixes

const (
	KVPrefixGallerySession = "gallery:session:"
	KVPrefixGlobeFocus     = "globe:focus:"
	KVPrefixGlobeVisited   = "globe:visited:"
)
