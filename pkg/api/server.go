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

package api

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Melv1no/mcdata/pkg/data"
	"github.com/Melv1no/mcdata/pkg/dataset"
	"github.com/Melv1no/mcdata/pkg/defaults"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/logging"
	"github.com/Melv1no/mcdata/pkg/registry"
	"github.com/Melv1no/mcdata/pkg/server"
)

const (
	name           = "mcdatad"
	versionDefault = "dev"

	// EnvDataDir points at a directory layered over the embedded data.
	EnvDataDir = "MCDATA_DATA_DIR"
	// EnvCacheSize bounds the number of datasets kept in memory.
	EnvCacheSize = "MCDATA_CACHE_SIZE"
	// EnvPreload lists platform@version keys built before serving.
	EnvPreload = "MCDATA_PRELOAD"
	// EnvLogLevel sets the log level.
	EnvLogLevel = "LOG_LEVEL"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config holds the dataset settings of the API server.
type Config struct {
	DataDir   string
	CacheSize int
	Preload   []dataset.Key
	LogLevel  string
}

// ConfigFromEnv reads Config from the environment.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		DataDir:   strings.TrimSpace(os.Getenv(EnvDataDir)),
		CacheSize: defaults.DatasetCacheSize,
		LogLevel:  os.Getenv(EnvLogLevel),
	}

	if v := strings.TrimSpace(os.Getenv(EnvCacheSize)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, mcerrors.NewWithContext(mcerrors.ErrCodeInvalidRequest,
				"cache size must be a positive integer", map[string]any{"env": EnvCacheSize, "value": v})
		}
		cfg.CacheSize = n
	}

	keys, err := parseKeys(os.Getenv(EnvPreload))
	if err != nil {
		return nil, err
	}
	cfg.Preload = keys

	return cfg, nil
}

// parseKeys splits a comma-separated list of platform@version keys.
func parseKeys(s string) ([]dataset.Key, error) {
	var keys []dataset.Key
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := dataset.ParseKey(part)
		if err != nil {
			return nil, mcerrors.WrapWithContext(mcerrors.CodeOf(err),
				"invalid preload key", err, map[string]any{"env": EnvPreload, "value": part})
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// newRoutes builds the dataset cache and its HTTP routes.
func newRoutes(cfg *Config) (map[string]http.HandlerFunc, *dataset.Cache, error) {
	provider, err := data.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	reg, err := registry.Load(provider)
	if err != nil {
		return nil, nil, err
	}

	cache, err := dataset.NewCache(reg, data.NewLoader(provider), cfg.CacheSize)
	if err != nil {
		return nil, nil, err
	}

	routes := dataset.NewHandler(reg, cache).Routes()
	for path, h := range routes {
		routes[path] = withTimeout(h)
	}
	return routes, cache, nil
}

// withTimeout bounds a handler by defaults.DatasetHandlerTimeout.
func withTimeout(h http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(h, defaults.DatasetHandlerTimeout, "request timed out").ServeHTTP
}

// Serve starts the API server and blocks until it is shut down.
func Serve() error {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return mcerrors.Wrap(mcerrors.ErrCodeInvalidRequest, "failed to read .env file", err)
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"dataDir", cfg.DataDir,
		"cacheSize", cfg.CacheSize)

	routes, cache, err := newRoutes(cfg)
	if err != nil {
		slog.Error("failed to load data", "error", err)
		return err
	}

	if len(cfg.Preload) > 0 {
		pctx, cancel := context.WithTimeout(ctx, defaults.DatasetHandlerTimeout)
		err := cache.Preload(pctx, cfg.Preload)
		cancel()
		if err != nil {
			slog.Error("failed to preload datasets", "error", err)
			return err
		}
		slog.Info("datasets preloaded", "count", len(cfg.Preload))
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
