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

// GridSize is the width and height of the crafting grid.
const GridSize = 3

// Ingredient is one decoded grid cell or shapeless entry.
type Ingredient struct {
	ID       int
	Metadata *int
}

// RawResult is the "result" object of a raw record. Nil fields were absent
// or not integers.
type RawResult struct {
	ID       *int
	Metadata *int
	Count    *int
}

// Shape is implemented by Shaped and Shapeless.
type Shape interface {
	shape()
}

// Shaped is a positional grid. Rows may be ragged; a nil cell is empty.
type Shaped struct {
	Rows [][]*Ingredient
}

// Shapeless is a flat ingredient list; a nil entry contributes nothing.
type Shapeless struct {
	Ingredients []*Ingredient
}

func (Shaped) shape()    {}
func (Shapeless) shape() {}

// RawVariant is one raw recipe record.
type RawVariant struct {
	// Name is the key of the record in recipes.json.
	Name string

	// Result is nil when the record has no result object.
	Result *RawResult

	// Shape is nil when the record has neither inShape nor ingredients.
	Shape Shape
}

// Recipe is a normalized recipe bound to catalog items.
// Matrix is row-major with row 0 at the top; nil cells are empty.
type Recipe struct {
	Result      *item.Item
	ResultCount int
	Matrix      [GridSize][GridSize]*item.Item
}

// Ingredients returns the non-empty cells in row-major order.
func (r *Recipe) Ingredients() []*item.Item {
	var out []*item.Item
	for _, row := range r.Matrix {
		for _, cell := range row {
			if cell != nil {
				out = append(out, cell)
			}
		}
	}
	return out
}
