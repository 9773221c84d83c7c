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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Melv1no/mcdata/pkg/item"
	"github.com/Melv1no/mcdata/pkg/server"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	reg, loader := embeddedSources(t)
	c, err := NewCache(reg, loader, 4)
	require.NoError(t, err)
	return NewHandler(reg, c)
}

func serve(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	route := req.URL.Path
	handler, ok := h.Routes()[route]
	require.True(t, ok, "no route %s", route)
	handler(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleVersions(t *testing.T) {
	rec := serve(t, newTestHandler(t), http.MethodGet, "/v1/versions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=")

	var resp VersionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Platforms, 2)
	assert.Equal(t, "bedrock", string(resp.Platforms[0].Platform))
}

func TestHandleLatest(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		target  string
		status  int
		version string
	}{
		{"pc", "/v1/versions/latest?platform=pc", http.StatusOK, "1.8.9"},
		{"java alias", "/v1/versions/latest?platform=java", http.StatusOK, "1.8.9"},
		{"bedrock", "/v1/versions/latest?platform=bedrock", http.StatusOK, "1.16.201"},
		{"missing platform", "/v1/versions/latest", http.StatusBadRequest, ""},
		{"bad platform", "/v1/versions/latest?platform=xbox", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.target)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			var resp LatestResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.version, resp.Version)
		})
	}
}

func TestHandleItems(t *testing.T) {
	h := newTestHandler(t)

	t.Run("search", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/items?platform=pc&version=1.8&q=PLANK")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ItemsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "planks", resp.Items[0].Name)
	})

	t.Run("limit", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/items?platform=pc&version=1.8&limit=2")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ItemsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/items?platform=pc&version=1.8&limit=0")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ItemsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 14, resp.Count)
	})

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"non-numeric limit", "/v1/items?platform=pc&version=1.8&limit=ten", http.StatusBadRequest, "INVALID_REQUEST"},
		{"limit too large", "/v1/items?platform=pc&version=1.8&limit=5000", http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing version", "/v1/items?platform=pc", http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown version", "/v1/items?platform=pc&version=9.9", http.StatusNotFound, "UNKNOWN_VERSION"},
		{"unsupported version", "/v1/items?platform=pc&version=1.7", http.StatusUnprocessableEntity, "UNSUPPORTED_VERSION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.target)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestHandleItemsValidationDetails(t *testing.T) {
	rec := serve(t, newTestHandler(t), http.MethodGet, "/v1/items?platform=xbox")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Contains(t, resp.Details, "platform")
	assert.Contains(t, resp.Details, "version")
}

func TestHandleItem(t *testing.T) {
	h := newTestHandler(t)

	t.Run("by id", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/item?platform=pc&version=1.17&token=183")
		require.Equal(t, http.StatusOK, rec.Code)

		var it item.Item
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
		assert.Equal(t, "crafting_table", it.Name)
	})

	t.Run("not found names token", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/item?platform=pc&version=1.8&token=potion_of_beer")
		require.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "ITEM_NOT_FOUND", resp.Code)
		assert.Contains(t, resp.Message, "potion_of_beer")
		assert.Equal(t, "potion_of_beer", resp.Details["token"])
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := serve(t, h, http.MethodPost, "/v1/item?platform=pc&version=1.8&token=1")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	})
}

func TestHandleRecipe(t *testing.T) {
	h := newTestHandler(t)

	t.Run("first recipe", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/recipe?platform=pc&version=1.17&item=crafting_table")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RecipeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Recipes, 1)

		r := resp.Recipes[0]
		assert.Equal(t, 1, r.Count)
		assert.Equal(t, "4xoak_planks", r.Summary)
		assert.Equal(t, "oak_planks", r.Grid[1][1])
		assert.Equal(t, "", r.Grid[2][2])
	})

	t.Run("all variants", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/v1/recipe?platform=pc&version=1.8&item=planks&all=true")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RecipeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Recipes, 2)
	})

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"no recipe", "/v1/recipe?platform=pc&version=1.8&item=leather", http.StatusNotFound, "RECIPE_NOT_FOUND"},
		{"unknown item", "/v1/recipe?platform=pc&version=1.8&item=potion_of_beer", http.StatusNotFound, "ITEM_NOT_FOUND"},
		{"bad all flag", "/v1/recipe?platform=pc&version=1.8&item=planks&all=maybe", http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing item", "/v1/recipe?platform=pc&version=1.8", http.StatusBadRequest, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.target)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}
