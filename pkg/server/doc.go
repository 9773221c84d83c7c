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

// Package server provides the HTTP plumbing shared by mcdata services.
//
// It owns the listener, middleware chain, probes and error schema; the
// routes themselves are supplied by the caller.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("mcdatad"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/items": h.ListItems,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Middleware
//
// Every registered route is wrapped, outermost first, with:
//
//   - Prometheus request metrics
//   - API version negotiation (Accept: application/vnd.mcdata.v1+json)
//   - X-Request-Id propagation (UUID, generated when missing or invalid)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// /health, /ready and /metrics bypass the chain.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and
// RATE_LIMIT_BURST. Start validates the final Config with
// go-playground/validator before listening.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "ITEM_NOT_FOUND",
//	  "message": "item not found: potion_of_beer",
//	  "details": {"token": "potion_of_beer", "suggestions": []},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// HTTPStatusFromCode maps error codes to statuses:
//   - INVALID_REQUEST: 400
//   - NOT_FOUND, UNKNOWN_PLATFORM, UNKNOWN_VERSION, ITEM_NOT_FOUND, RECIPE_NOT_FOUND: 404
//   - UNSUPPORTED_VERSION: 422
//   - RATE_LIMIT_EXCEEDED: 429
//   - SERVICE_UNAVAILABLE: 503
//   - TIMEOUT: 504
//   - everything else, including MALFORMED_DATA and RESOURCE_NOT_FOUND: 500
package server
