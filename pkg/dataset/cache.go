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

package dataset

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Melv1no/mcdata/pkg/defaults"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/registry"
)

// preloadConcurrency bounds the number of datasets built at once by Preload.
const preloadConcurrency = 4

// Cache holds recently used datasets. Failed builds are not cached.
type Cache struct {
	res    PathResolver
	loader Loader
	lru    *lru.Cache[Key, *Dataset]
	group  singleflight.Group
}

// NewCache returns a cache of at most size datasets. A non-positive size
// uses defaults.DatasetCacheSize.
func NewCache(res PathResolver, loader Loader, size int) (*Cache, error) {
	if size <= 0 {
		size = defaults.DatasetCacheSize
	}
	l, err := lru.New[Key, *Dataset](size)
	if err != nil {
		return nil, mcerrors.Wrap(mcerrors.ErrCodeInvalidRequest, "invalid dataset cache size", err)
	}
	return &Cache{res: res, loader: loader, lru: l}, nil
}

// Get returns the dataset for platform and version, building it on a miss.
// Concurrent misses for the same key share one build.
func (c *Cache) Get(ctx context.Context, platform registry.Platform, version string) (*Dataset, error) {
	key := Key{Platform: platform, Version: version}
	if ds, ok := c.lru.Get(key); ok {
		cacheHits.Inc()
		return ds, nil
	}
	cacheMisses.Inc()

	ch := c.group.DoChan(key.String(), func() (any, error) {
		if ds, ok := c.lru.Get(key); ok {
			return ds, nil
		}
		ds, err := New(c.res, c.loader, platform, version)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, ds)
		return ds, nil
	})

	select {
	case <-ctx.Done():
		return nil, mcerrors.WrapWithContext(mcerrors.ErrCodeTimeout,
			fmt.Sprintf("dataset %s not ready", key), ctx.Err(),
			map[string]any{"platform": string(platform), "version": version})
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Dataset), nil
	}
}

// Preload builds every key, stopping at the first failure.
func (c *Cache) Preload(ctx context.Context, keys []Key) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, k := range keys {
		g.Go(func() error {
			_, err := c.Get(gctx, k.Platform, k.Version)
			return err
		})
	}
	return g.Wait()
}

// Len returns the number of cached datasets.
func (c *Cache) Len() int {
	return c.lru.Len()
}
