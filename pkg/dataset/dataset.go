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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Melv1no/mcdata/pkg/defaults"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/item"
	"github.com/Melv1no/mcdata/pkg/recipe"
	"github.com/Melv1no/mcdata/pkg/registry"
)

// PathResolver maps a (platform, version) pair to its data directories.
type PathResolver interface {
	Resolve(platform registry.Platform, version string) (registry.Paths, error)
}

// Loader returns the raw contents of a version's data files.
type Loader interface {
	ReadItems(itemPath string) ([]byte, error)
	ReadRecipes(recipePath string) ([]byte, error)
}

// Key identifies a dataset.
type Key struct {
	Platform registry.Platform
	Version  string
}

// String returns the key as platform@version.
func (k Key) String() string {
	return string(k.Platform) + "@" + k.Version
}

// ParseKey parses a platform@version string.
func ParseKey(s string) (Key, error) {
	p, v, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok || strings.TrimSpace(v) == "" {
		return Key{}, mcerrors.NewWithContext(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid dataset key %q, expected platform@version", s),
			map[string]any{"key": s})
	}
	platform, err := registry.ParsePlatform(p)
	if err != nil {
		return Key{}, err
	}
	return Key{Platform: platform, Version: strings.TrimSpace(v)}, nil
}

// Stats summarizes a dataset.
type Stats struct {
	Platform registry.Platform `json:"platform" yaml:"platform"`
	Version  string            `json:"version" yaml:"version"`
	Items    int               `json:"items" yaml:"items"`
	Recipes  recipe.Stats      `json:"recipes" yaml:"recipes"`
}

// Dataset is the immutable catalog and recipe index of one version.
type Dataset struct {
	key     Key
	catalog *item.Catalog
	index   *recipe.Index
}

// New builds the dataset for platform and version.
func New(res PathResolver, loader Loader, platform registry.Platform, version string) (*Dataset, error) {
	key := Key{Platform: platform, Version: version}
	start := time.Now()

	ds, err := build(res, loader, key)
	if err != nil {
		datasetBuilds.WithLabelValues("error").Inc()
		code := mcerrors.CodeOf(err)
		if code == "" {
			code = mcerrors.ErrCodeInternal
		}
		return nil, mcerrors.WrapWithContext(code,
			fmt.Sprintf("cannot load dataset %s", key), err,
			map[string]any{"platform": string(platform), "version": version})
	}

	elapsed := time.Since(start)
	datasetBuilds.WithLabelValues("ok").Inc()
	datasetBuildDuration.WithLabelValues(string(platform)).Observe(elapsed.Seconds())

	slog.Info("dataset loaded",
		"platform", platform,
		"version", version,
		"items", ds.catalog.Len(),
		"recipes", ds.index.Len(),
		"duration", elapsed.String())

	return ds, nil
}

func build(res PathResolver, loader Loader, key Key) (*Dataset, error) {
	paths, err := res.Resolve(key.Platform, key.Version)
	if err != nil {
		return nil, err
	}

	rawItems, err := loader.ReadItems(paths.Items)
	if err != nil {
		return nil, err
	}
	items, err := item.Decode(rawItems)
	if err != nil {
		return nil, err
	}
	catalog := item.NewCatalog(items)

	rawRecipes, err := loader.ReadRecipes(paths.Recipes)
	if err != nil {
		return nil, err
	}
	variants, err := recipe.Collect(rawRecipes)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		key:     key,
		catalog: catalog,
		index:   recipe.NewIndex(variants, catalog),
	}, nil
}

// Key returns the dataset's platform and version.
func (d *Dataset) Key() Key { return d.key }

// Platform returns the dataset's platform.
func (d *Dataset) Platform() registry.Platform { return d.key.Platform }

// Version returns the dataset's version.
func (d *Dataset) Version() string { return d.key.Version }

// Items returns every item in file order.
func (d *Dataset) Items() []*item.Item {
	return d.catalog.All()
}

// Recipes returns every normalized recipe in file order.
func (d *Dataset) Recipes() []*recipe.Recipe {
	return d.index.All()
}

// SearchItems returns items whose name contains query, ignoring case.
func (d *Dataset) SearchItems(query string, limit int) []*item.Item {
	return d.catalog.Search(query, limit)
}

// GetItemByIDOrName resolves token as a numeric id, then as a name.
func (d *Dataset) GetItemByIDOrName(token string) (*item.Item, error) {
	return d.catalog.Lookup(token, defaults.SuggestionLimit)
}

// GetRecipeForResult returns the first recipe producing it.
func (d *Dataset) GetRecipeForResult(it *item.Item) (*recipe.Recipe, bool) {
	return d.index.LookupByResult(it)
}

// GetRecipesForResult returns every recipe producing it.
func (d *Dataset) GetRecipesForResult(it *item.Item) []*recipe.Recipe {
	return d.index.LookupAllByResult(it)
}

// FormatRecipe renders the ingredient counts of r.
func (d *Dataset) FormatRecipe(r *recipe.Recipe) string {
	return recipe.Format(r)
}

// Stats returns item and recipe counts.
func (d *Dataset) Stats() Stats {
	return Stats{
		Platform: d.key.Platform,
		Version:  d.key.Version,
		Items:    d.catalog.Len(),
		Recipes:  d.index.Stats(),
	}
}
