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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Melv1no/mcdata/pkg/defaults"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/item"
	"github.com/Melv1no/mcdata/pkg/registry"
	"github.com/Melv1no/mcdata/pkg/serializer"
	"github.com/Melv1no/mcdata/pkg/server"
)

// VersionSource lists registered versions.
type VersionSource interface {
	AvailableVersions() []registry.PlatformVersions
	LatestVersionWithRecipes(platform registry.Platform) (string, error)
}

// Handler serves datasets over HTTP.
type Handler struct {
	versions VersionSource
	cache    *Cache
	validate *validator.Validate
}

// NewHandler returns a Handler reading versions from versions and datasets
// from cache.
func NewHandler(versions VersionSource, cache *Cache) *Handler {
	v := validator.New()
	_ = v.RegisterValidation("platform", validatePlatform)
	return &Handler{versions: versions, cache: cache, validate: v}
}

// Routes returns the handler's routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/versions":        h.HandleVersions,
		"/v1/versions/latest": h.HandleLatest,
		"/v1/items":           h.HandleItems,
		"/v1/item":            h.HandleItem,
		"/v1/recipe":          h.HandleRecipe,
	}
}

func validatePlatform(fl validator.FieldLevel) bool {
	_, err := registry.ParsePlatform(fl.Field().String())
	return err == nil
}

type datasetQuery struct {
	Platform string `validate:"required,platform"`
	Version  string `validate:"required,max=64"`
}

type itemsQuery struct {
	datasetQuery
	Query string `validate:"max=128"`
	Limit int    `validate:"gte=0,lte=1000"`
}

type itemQuery struct {
	datasetQuery
	Token string `validate:"required,max=128"`
}

type recipeQuery struct {
	datasetQuery
	Item string `validate:"required,max=128"`
	All  bool
}

type latestQuery struct {
	Platform string `validate:"required,platform"`
}

// VersionsResponse lists registered versions.
type VersionsResponse struct {
	Platforms []registry.PlatformVersions `json:"platforms" yaml:"platforms"`
}

// LatestResponse names the latest version with recipes.
type LatestResponse struct {
	Platform registry.Platform `json:"platform" yaml:"platform"`
	Version  string            `json:"version" yaml:"version"`
}

// ItemsResponse is a page of search results.
type ItemsResponse struct {
	Platform registry.Platform `json:"platform" yaml:"platform"`
	Version  string            `json:"version" yaml:"version"`
	Query    string            `json:"query" yaml:"query"`
	Count    int               `json:"count" yaml:"count"`
	Items    []*item.Item      `json:"items" yaml:"items"`
}

// RecipeResponse lists the recipes producing one item.
type RecipeResponse struct {
	Platform registry.Platform `json:"platform" yaml:"platform"`
	Version  string            `json:"version" yaml:"version"`
	Item     *item.Item        `json:"item" yaml:"item"`
	Recipes  []RecipeView      `json:"recipes" yaml:"recipes"`
}

// HandleVersions serves GET /v1/versions.
func (h *Handler) HandleVersions(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, VersionsResponse{Platforms: h.versions.AvailableVersions()})
}

// HandleLatest serves GET /v1/versions/latest.
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := latestQuery{Platform: r.URL.Query().Get("platform")}
	if !h.check(w, r, q) {
		return
	}

	platform, _ := registry.ParsePlatform(q.Platform)
	v, err := h.versions.LatestVersionWithRecipes(platform)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to resolve latest version", nil)
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, LatestResponse{Platform: platform, Version: v})
}

// HandleItems serves GET /v1/items.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	values := r.URL.Query()
	q := itemsQuery{
		datasetQuery: datasetQueryFrom(r),
		Query:        values.Get("q"),
		Limit:        defaults.SearchLimit,
	}
	if s := values.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, mcerrors.ErrCodeInvalidRequest,
				"Invalid limit", false, map[string]any{"limit": s})
			return
		}
		q.Limit = n
	}
	if !h.check(w, r, q) {
		return
	}

	ds, ok := h.dataset(w, r, q.datasetQuery)
	if !ok {
		return
	}

	limit := q.Limit
	if limit == 0 {
		limit = defaults.MaxSearchLimit
	}
	items := ds.SearchItems(q.Query, limit)

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, ItemsResponse{
		Platform: ds.Platform(),
		Version:  ds.Version(),
		Query:    q.Query,
		Count:    len(items),
		Items:    items,
	})
}

// HandleItem serves GET /v1/item.
func (h *Handler) HandleItem(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := itemQuery{datasetQuery: datasetQueryFrom(r), Token: r.URL.Query().Get("token")}
	if !h.check(w, r, q) {
		return
	}

	ds, ok := h.dataset(w, r, q.datasetQuery)
	if !ok {
		return
	}

	it, err := ds.GetItemByIDOrName(q.Token)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up item", nil)
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, it)
}

// HandleRecipe serves GET /v1/recipe.
func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	values := r.URL.Query()
	q := recipeQuery{datasetQuery: datasetQueryFrom(r), Item: values.Get("item")}
	if s := values.Get("all"); s != "" {
		all, err := strconv.ParseBool(s)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, mcerrors.ErrCodeInvalidRequest,
				"Invalid all flag", false, map[string]any{"all": s})
			return
		}
		q.All = all
	}
	if !h.check(w, r, q) {
		return
	}

	ds, ok := h.dataset(w, r, q.datasetQuery)
	if !ok {
		return
	}

	it, err := ds.GetItemByIDOrName(q.Item)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up item", nil)
		return
	}

	recipes := ds.GetRecipesForResult(it)
	if len(recipes) == 0 {
		server.WriteError(w, r, http.StatusNotFound, mcerrors.ErrCodeRecipeNotFound,
			fmt.Sprintf("no recipe produces %s", it.Name), false,
			map[string]any{"item": it.Name, "platform": q.Platform, "version": q.Version})
		return
	}
	if !q.All {
		recipes = recipes[:1]
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, RecipeResponse{
		Platform: ds.Platform(),
		Version:  ds.Version(),
		Item:     it,
		Recipes:  NewRecipeViews(recipes),
	})
}

func datasetQueryFrom(r *http.Request) datasetQuery {
	values := r.URL.Query()
	return datasetQuery{
		Platform: values.Get("platform"),
		Version:  strings.TrimSpace(values.Get("version")),
	}
}

// dataset fetches the dataset named by q, writing the error response on failure.
func (h *Handler) dataset(w http.ResponseWriter, r *http.Request, q datasetQuery) (*Dataset, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.DatasetBuildTimeout)
	defer cancel()

	platform, _ := registry.ParsePlatform(q.Platform)
	ds, err := h.cache.Get(ctx, platform, q.Version)
	if err != nil {
		slog.Debug("dataset unavailable", "platform", q.Platform, "version", q.Version, "error", err)
		server.WriteErrorFromErr(w, r, err, "Failed to load dataset", nil)
		return nil, false
	}
	return ds, true
}

// check validates q, writing a 400 on failure.
func (h *Handler) check(w http.ResponseWriter, r *http.Request, q any) bool {
	err := h.validate.Struct(q)
	if err == nil {
		return true
	}
	server.WriteError(w, r, http.StatusBadRequest, mcerrors.ErrCodeInvalidRequest,
		"Invalid query parameters", false, validationDetails(err))
	return false
}

// validationDetails maps failed fields to messages without exposing struct names.
func validationDetails(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]any{"error": err.Error()}
	}

	out := make(map[string]any, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			out[field] = "is required"
		case "platform":
			out[field] = "must be one of " + strings.Join(registry.SupportedPlatforms(), ", ")
		case "max", "lte":
			out[field] = "must be at most " + e.Param()
		case "gte":
			out[field] = "must be at least " + e.Param()
		default:
			out[field] = "is invalid"
		}
	}
	return out
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, mcerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.ResponseCacheTTL.Seconds())))
}
