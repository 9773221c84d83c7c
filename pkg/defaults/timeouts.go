// Copyright (c) 2026, The mcdata Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// DatasetHandlerTimeout is the timeout for dataset query requests.
	DatasetHandlerTimeout = 30 * time.Second

	// DatasetBuildTimeout bounds a single dataset build triggered by a request.
	// Should be less than DatasetHandlerTimeout to allow error handling.
	DatasetBuildTimeout = 20 * time.Second

	// ResponseCacheTTL is the Cache-Control max-age for dataset responses.
	// Bundled data never changes for a running process.
	ResponseCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Query limits.
const (
	// SearchLimit is the number of items returned by a search when the caller
	// does not ask for a specific limit.
	SearchLimit = 25

	// MaxSearchLimit caps the limit accepted by the API.
	MaxSearchLimit = 1000

	// SuggestionLimit is the number of "did you mean" names attached to an
	// item lookup miss.
	SuggestionLimit = 3
)

// Cache sizing.
const (
	// DatasetCacheSize is the number of (platform, version) snapshots kept
	// in memory by the API server.
	DatasetCacheSize = 16
)
