// Package api provides the HTTP API layer of the mcdata service.
//
// This package is a thin wrapper around pkg/server. It loads the dataset
// registry, builds the dataset cache and hands the dataset routes to the
// server, which owns middleware, health probes and graceful shutdown.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited, bounded by a request timeout):
//   - GET /v1/versions        - Registered versions per platform
//   - GET /v1/versions/latest - Latest version with recipes for a platform
//   - GET /v1/items           - Item search
//   - GET /v1/item            - Item lookup by id or name
//   - GET /v1/recipe          - Recipes producing an item
//
// System endpoints:
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// Settings are read from the environment. A .env file in the working
// directory is loaded first when present.
//   - MCDATA_DATA_DIR: directory layered over the embedded data
//   - MCDATA_CACHE_SIZE: datasets kept in memory (default: 16)
//   - MCDATA_PRELOAD: comma-separated platform@version keys built at startup
//   - LOG_LEVEL: debug, info, warn or error
//   - PORT, RATE_LIMIT, RATE_LIMIT_BURST, SHUTDOWN_TIMEOUT_SECONDS: see pkg/server
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/Melv1no/mcdata/pkg/api.version=1.0.0'"
package api
