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
	"github.com/Melv1no/mcdata/pkg/item"
)

// Resolver looks items up by numeric id. *item.Catalog implements it.
type Resolver interface {
	ByID(id int) (*item.Item, bool)
}

// Outcome classifies what normalization did with a variant.
type Outcome string

// Outcome values, used as the metrics label.
const (
	OutcomeNormalized       Outcome = "normalized"
	OutcomeNoResult         Outcome = "no_result"
	OutcomeUnresolvedResult Outcome = "unresolved_result"
	OutcomeNoShape          Outcome = "no_shape"
)

// Normalize binds a raw variant to items. It reports false when the variant
// has no result, its result id is not in items, or it has no shape.
func Normalize(raw RawVariant, items Resolver) (*Recipe, bool) {
	r, outcome, _ := normalize(raw, items)
	return r, outcome == OutcomeNormalized
}

// normalize also returns the number of ingredients that did not resolve.
func normalize(raw RawVariant, items Resolver) (*Recipe, Outcome, int) {
	if raw.Result == nil {
		return nil, OutcomeNoResult, 0
	}

	resultID := -1
	if raw.Result.ID != nil {
		resultID = *raw.Result.ID
	}
	count := 1
	if raw.Result.Count != nil && *raw.Result.Count > 0 {
		count = *raw.Result.Count
	}

	result, ok := items.ByID(resultID)
	if !ok {
		return nil, OutcomeUnresolvedResult, 0
	}

	r := &Recipe{Result: result, ResultCount: count}
	dropped := 0
	place := func(y, x int, ing *Ingredient) {
		if ing == nil {
			return
		}
		// Metadata is ignored; ids alone select the item.
		if it, ok := items.ByID(ing.ID); ok {
			r.Matrix[y][x] = it
		} else {
			dropped++
		}
	}

	switch s := raw.Shape.(type) {
	case Shaped:
		for y := 0; y < len(s.Rows) && y < GridSize; y++ {
			row := s.Rows[y]
			for x := 0; x < len(row) && x < GridSize; x++ {
				place(y, x, row[x])
			}
		}
	case Shapeless:
		for i := 0; i < len(s.Ingredients) && i < GridSize*GridSize; i++ {
			place(i/GridSize, i%GridSize, s.Ingredients[i])
		}
	default:
		return nil, OutcomeNoShape, 0
	}

	return r, OutcomeNormalized, dropped
}
