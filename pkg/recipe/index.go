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

package recipe

import (
	"log/slog"

	"github.com/Melv1no/mcdata/pkg/item"
)

// Stats summarizes how an index was built.
type Stats struct {
	Variants              int             `json:"variants" yaml:"variants"`
	Recipes               int             `json:"recipes" yaml:"recipes"`
	Dropped               map[Outcome]int `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	UnresolvedIngredients int             `json:"unresolvedIngredients" yaml:"unresolvedIngredients"`
}

// Index holds normalized recipes in raw-record order.
type Index struct {
	recipes  []*Recipe
	byResult map[string][]*Recipe
	stats    Stats
}

// NewIndex normalizes every variant against items. Variants that do not
// normalize are counted in Stats and otherwise ignored.
func NewIndex(raws []RawVariant, items Resolver) *Index {
	idx := &Index{
		recipes:  make([]*Recipe, 0, len(raws)),
		byResult: make(map[string][]*Recipe),
		stats:    Stats{Variants: len(raws), Dropped: make(map[Outcome]int)},
	}

	for _, raw := range raws {
		r, outcome, dropped := normalize(raw, items)
		recipeVariants.WithLabelValues(string(outcome)).Inc()
		idx.stats.UnresolvedIngredients += dropped
		if outcome != OutcomeNormalized {
			idx.stats.Dropped[outcome]++
			continue
		}
		idx.recipes = append(idx.recipes, r)
		idx.byResult[r.Result.Name] = append(idx.byResult[r.Result.Name], r)
	}
	idx.stats.Recipes = len(idx.recipes)
	recipeUnresolvedIngredients.Add(float64(idx.stats.UnresolvedIngredients))

	slog.Debug("recipe index built",
		"variants", idx.stats.Variants,
		"recipes", idx.stats.Recipes,
		"no_result", idx.stats.Dropped[OutcomeNoResult],
		"unresolved_result", idx.stats.Dropped[OutcomeUnresolvedResult],
		"no_shape", idx.stats.Dropped[OutcomeNoShape],
		"unresolved_ingredients", idx.stats.UnresolvedIngredients)

	return idx
}

// LookupByResult returns the first recipe whose result has the same name as it.
func (x *Index) LookupByResult(it *item.Item) (*Recipe, bool) {
	if it == nil {
		return nil, false
	}
	matches := x.byResult[it.Name]
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// LookupAllByResult returns every recipe whose result has the same name as
// it, in raw-record order.
func (x *Index) LookupAllByResult(it *item.Item) []*Recipe {
	if it == nil {
		return nil
	}
	matches := x.byResult[it.Name]
	out := make([]*Recipe, len(matches))
	copy(out, matches)
	return out
}

// All returns every recipe in raw-record order.
func (x *Index) All() []*Recipe {
	out := make([]*Recipe, len(x.recipes))
	copy(out, x.recipes)
	return out
}

// Len returns the number of recipes.
func (x *Index) Len() int {
	return len(x.recipes)
}

// Stats returns build statistics.
func (x *Index) Stats() Stats {
	s := x.stats
	s.Dropped = make(map[Outcome]int, len(x.stats.Dropped))
	for k, v := range x.stats.Dropped {
		s.Dropped[k] = v
	}
	return s
}
