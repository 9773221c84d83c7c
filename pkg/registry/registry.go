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

package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Melv1no/mcdata/pkg/data"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// Paths locates the data directories of one version.
// An empty field means the version ships no such file.
type Paths struct {
	Items   string `json:"items,omitempty" yaml:"items,omitempty"`
	Recipes string `json:"recipes,omitempty" yaml:"recipes,omitempty"`
}

// HasItems reports whether the version has an items directory.
func (p Paths) HasItems() bool {
	return strings.TrimSpace(p.Items) != ""
}

// HasRecipes reports whether the version has a recipes directory.
func (p Paths) HasRecipes() bool {
	return strings.TrimSpace(p.Recipes) != ""
}

// VersionInfo describes one registered version.
type VersionInfo struct {
	Version    string `json:"version" yaml:"version"`
	HasRecipes bool   `json:"hasRecipes" yaml:"hasRecipes"`
}

// PlatformVersions lists the registered versions of a platform.
type PlatformVersions struct {
	Platform Platform      `json:"platform" yaml:"platform"`
	Versions []VersionInfo `json:"versions" yaml:"versions"`
}

// Registry is the immutable platform/version path table.
type Registry struct {
	platforms map[Platform]map[string]Paths
}

// Load reads and parses dataPaths.json from provider.
func Load(provider data.Provider) (*Registry, error) {
	raw, err := provider.ReadFile(data.PathsFileName)
	if err != nil {
		return nil, mcerrors.WrapWithContext(mcerrors.ErrCodeResourceNotFound,
			fmt.Sprintf("resource not found: %s", data.PathsFileName), err,
			map[string]any{"source": provider.Source(data.PathsFileName)})
	}

	r, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	slog.Debug("version registry loaded",
		"source", provider.Source(data.PathsFileName),
		"platforms", len(r.platforms))
	return r, nil
}

// Parse builds a Registry from dataPaths.json content.
// Platforms outside SupportedPlatforms are skipped.
func Parse(raw []byte) (*Registry, error) {
	var table map[string]map[string]Paths
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, mcerrors.Wrap(mcerrors.ErrCodeMalformedData,
			fmt.Sprintf("invalid %s", data.PathsFileName), err)
	}

	r := &Registry{platforms: make(map[Platform]map[string]Paths, len(table))}
	for key, versions := range table {
		p := Platform(strings.ToLower(key))
		if !p.IsValid() {
			slog.Warn("skipping unsupported platform in version registry", "platform", key)
			continue
		}
		m := make(map[string]Paths, len(versions))
		for v, paths := range versions {
			m[v] = paths
		}
		r.platforms[p] = m
	}
	return r, nil
}

// Resolve returns the data paths for a platform and version.
func (r *Registry) Resolve(platform Platform, version string) (Paths, error) {
	versions, ok := r.platforms[platform]
	if !ok {
		return Paths{}, mcerrors.NewWithContext(mcerrors.ErrCodeUnknownPlatform,
			fmt.Sprintf("unknown platform: %s", platform),
			map[string]any{"platform": platform.String()})
	}

	paths, ok := versions[version]
	if !ok {
		return Paths{}, mcerrors.NewWithContext(mcerrors.ErrCodeUnknownVersion,
			fmt.Sprintf("version %s unknown for platform %s", version, platform),
			map[string]any{"platform": platform.String(), "version": version})
	}

	if !paths.HasRecipes() {
		return Paths{}, mcerrors.NewWithContext(mcerrors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("no recipes.json for version %s on platform %s", version, platform),
			map[string]any{"platform": platform.String(), "version": version, "missing": data.RecipesFileName})
	}
	if !paths.HasItems() {
		return Paths{}, mcerrors.NewWithContext(mcerrors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("no items.json for version %s on platform %s", version, platform),
			map[string]any{"platform": platform.String(), "version": version, "missing": data.ItemsFileName})
	}

	return paths, nil
}

// Platforms returns the platforms present in the table, sorted.
func (r *Registry) Platforms() []Platform {
	out := make([]Platform, 0, len(r.platforms))
	for p := range r.platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AvailableVersions lists every registered version per platform, with a flag
// telling whether it has recipes. Versions are in ordinal string order.
func (r *Registry) AvailableVersions() []PlatformVersions {
	out := make([]PlatformVersions, 0, len(r.platforms))
	for _, p := range r.Platforms() {
		versions := r.platforms[p]
		infos := make([]VersionInfo, 0, len(versions))
		for v, paths := range versions {
			infos = append(infos, VersionInfo{Version: v, HasRecipes: paths.HasRecipes()})
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].Version < infos[j].Version })
		out = append(out, PlatformVersions{Platform: p, Versions: infos})
	}
	return out
}

// LatestVersionWithRecipes returns the greatest version of platform that has
// recipes, comparing version strings ordinally without regard to case.
// The comparison is not numeric: "1.9" sorts after "1.17".
func (r *Registry) LatestVersionWithRecipes(platform Platform) (string, error) {
	versions, ok := r.platforms[platform]
	if !ok {
		return "", mcerrors.NewWithContext(mcerrors.ErrCodeUnknownPlatform,
			fmt.Sprintf("unknown platform: %s", platform),
			map[string]any{"platform": platform.String()})
	}

	var latest string
	found := false
	for v, paths := range versions {
		if !paths.HasRecipes() {
			continue
		}
		if !found || compareFold(v, latest) > 0 {
			latest = v
			found = true
		}
	}

	if !found {
		return "", mcerrors.NewWithContext(mcerrors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("no version with recipes.json for platform %s", platform),
			map[string]any{"platform": platform.String()})
	}
	return latest, nil
}

// compareFold orders strings by their upper-cased bytes, falling back to
// the raw bytes so the result is total.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToUpper(a), strings.ToUpper(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
