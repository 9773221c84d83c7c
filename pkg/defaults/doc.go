// Package defaults provides centralized configuration constants for mcdata.
//
// This package defines timeout values, query limits and cache sizing used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Query limits: For item search
//   - Cache sizing: For the dataset snapshot cache
//
// # Usage
//
//	import "github.com/Melv1no/mcdata/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.DatasetHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Dataset build: 20s, shorter than the handler so errors can be reported
//   - HTTP handlers: 30s
//   - Server shutdown: 30s for graceful shutdown
package defaults
