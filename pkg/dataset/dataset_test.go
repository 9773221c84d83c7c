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
	"strconv"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Melv1no/mcdata/pkg/data"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/registry"
)

func embeddedSources(t *testing.T) (*registry.Registry, *data.Loader) {
	t.Helper()
	provider := data.Embedded()
	reg, err := registry.Load(provider)
	require.NoError(t, err)
	return reg, data.NewLoader(provider)
}

func mustDataset(t *testing.T, platform registry.Platform, version string) *Dataset {
	t.Helper()
	reg, loader := embeddedSources(t)
	ds, err := New(reg, loader, platform, version)
	require.NoError(t, err)
	return ds
}

func TestNewCraftingTable(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.17")

	table, err := ds.GetItemByIDOrName("crafting_table")
	require.NoError(t, err)

	r, ok := ds.GetRecipeForResult(table)
	require.True(t, ok)
	assert.Equal(t, 1, r.ResultCount)
	assert.Same(t, table, r.Result)

	planks, err := ds.GetItemByIDOrName("oak_planks")
	require.NoError(t, err)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row < 2 && col < 2 {
				assert.Same(t, planks, r.Matrix[row][col], "cell [%d][%d]", row, col)
			} else {
				assert.Nil(t, r.Matrix[row][col], "cell [%d][%d]", row, col)
			}
		}
	}
	assert.Equal(t, "4xoak_planks", ds.FormatRecipe(r))
}

func TestNewFailures(t *testing.T) {
	reg, loader := embeddedSources(t)

	tests := []struct {
		name     string
		platform registry.Platform
		version  string
		code     mcerrors.ErrorCode
	}{
		{"no recipes file", registry.PlatformPC, "1.7", mcerrors.ErrCodeUnsupportedVersion},
		{"items only bedrock", registry.PlatformBedrock, "1.17.10", mcerrors.ErrCodeUnsupportedVersion},
		{"unknown version", registry.PlatformPC, "0.0.1", mcerrors.ErrCodeUnknownVersion},
		{"unknown platform", registry.Platform("xbox"), "1.8", mcerrors.ErrCodeUnknownPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(reg, loader, tt.platform, tt.version)
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.Equal(t, tt.code, mcerrors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.version)
		})
	}
}

func TestNewResourceAndParseErrors(t *testing.T) {
	reg, err := registry.Parse([]byte(`{"pc": {
		"1.0": {"items": "pc/1.0", "recipes": "pc/1.0"},
		"2.0": {"items": "pc/2.0", "recipes": "pc/2.0"},
		"3.0": {"items": "pc/3.0", "recipes": "pc/3.0"}
	}}`))
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"pc/2.0/items.json":   {Data: []byte(`{"not": "an array"}`)},
		"pc/2.0/recipes.json": {Data: []byte(`{}`)},
		"pc/3.0/items.json":   {Data: []byte(`[]`)},
		"pc/3.0/recipes.json": {Data: []byte(`[1, 2]`)},
	}
	loader := data.NewLoader(data.NewFSProvider(fsys, ""))

	tests := []struct {
		version string
		code    mcerrors.ErrorCode
	}{
		{"1.0", mcerrors.ErrCodeResourceNotFound},
		{"2.0", mcerrors.ErrCodeMalformedData},
		{"3.0", mcerrors.ErrCodeMalformedData},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			ds, err := New(reg, loader, registry.PlatformPC, tt.version)
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.Equal(t, tt.code, mcerrors.CodeOf(err))
		})
	}
}

func TestItemLookupRoundTrip(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.8")

	for _, it := range ds.Items() {
		byID, err := ds.GetItemByIDOrName(strconv.Itoa(it.ID))
		require.NoError(t, err)
		byName, err := ds.GetItemByIDOrName(it.Name)
		require.NoError(t, err)
		assert.Same(t, it, byID)
		assert.Same(t, it, byName)
	}
}

func TestItemNotFound(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.8")

	_, err := ds.GetItemByIDOrName("potion_of_beer")
	require.Error(t, err)
	assert.True(t, mcerrors.IsCode(err, mcerrors.ErrCodeItemNotFound))
	assert.Contains(t, err.Error(), "potion_of_beer")
}

func TestRecipesForResult(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.8")

	planks, err := ds.GetItemByIDOrName("planks")
	require.NoError(t, err)

	all := ds.GetRecipesForResult(planks)
	require.Len(t, all, 2)

	first, ok := ds.GetRecipeForResult(planks)
	require.True(t, ok)
	assert.Same(t, all[0], first)

	leather, err := ds.GetItemByIDOrName("leather")
	require.NoError(t, err)
	_, ok = ds.GetRecipeForResult(leather)
	assert.False(t, ok)
	assert.Empty(t, ds.GetRecipesForResult(leather))
}

func TestSearchItems(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.8")

	got := ds.SearchItems("WOOD", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "wooden_pickaxe", got[0].Name)

	assert.Len(t, ds.SearchItems("", 3), 3)
}

func TestBedrockDataset(t *testing.T) {
	ds := mustDataset(t, registry.PlatformBedrock, "1.16.201")

	stick, err := ds.GetItemByIDOrName("320")
	require.NoError(t, err)
	require.NotNil(t, stick.Texture)

	r, ok := ds.GetRecipeForResult(stick)
	require.True(t, ok)
	assert.Equal(t, 4, r.ResultCount)
	assert.Equal(t, "2xplanks", ds.FormatRecipe(r))
	assert.Len(t, ds.Recipes(), 3)
}

func TestStats(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.8.9")

	s := ds.Stats()
	assert.Equal(t, registry.PlatformPC, s.Platform)
	assert.Equal(t, "1.8.9", s.Version)
	assert.Equal(t, 14, s.Items)
	assert.Equal(t, len(ds.Recipes()), s.Recipes.Recipes)
	assert.Equal(t, Key{Platform: registry.PlatformPC, Version: "1.8.9"}, ds.Key())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr mcerrors.ErrorCode
	}{
		{"pc@1.8", Key{Platform: registry.PlatformPC, Version: "1.8"}, ""},
		{"java@1.17", Key{Platform: registry.PlatformPC, Version: "1.17"}, ""},
		{" bedrock@1.16.201 ", Key{Platform: registry.PlatformBedrock, Version: "1.16.201"}, ""},
		{"pc", Key{}, mcerrors.ErrCodeInvalidRequest},
		{"pc@", Key{}, mcerrors.ErrCodeInvalidRequest},
		{"xbox@1.0", Key{}, mcerrors.ErrCodeUnknownPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, mcerrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParseKey(t, got.String()))
		})
	}
}

func mustParseKey(t *testing.T, s string) Key {
	t.Helper()
	k, err := ParseKey(s)
	require.NoError(t, err)
	return k
}

func TestNewRecipeView(t *testing.T) {
	ds := mustDataset(t, registry.PlatformPC, "1.8")

	torch, err := ds.GetItemByIDOrName("torch")
	require.NoError(t, err)
	r, ok := ds.GetRecipeForResult(torch)
	require.True(t, ok)

	v := NewRecipeView(r)
	assert.Equal(t, "torch", v.Result.Name)
	assert.Equal(t, 4, v.Count)
	assert.Equal(t, "1xcoal 1xstick", v.Summary)
	assert.Equal(t, "coal", v.Grid[0][0])
	assert.Equal(t, "stick", v.Grid[1][0])
	assert.Equal(t, "", v.Grid[0][1])
}
