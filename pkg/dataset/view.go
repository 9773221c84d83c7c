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
	"github.com/Melv1no/mcdata/pkg/item"
	"github.com/Melv1no/mcdata/pkg/recipe"
)

// RecipeView is the serializable form of a recipe. Grid holds item names,
// with empty strings for empty cells.
type RecipeView struct {
	Result  *item.Item                               `json:"result" yaml:"result"`
	Count   int                                      `json:"count" yaml:"count"`
	Grid    [recipe.GridSize][recipe.GridSize]string `json:"grid" yaml:"grid"`
	Summary string                                   `json:"summary" yaml:"summary"`
}

// NewRecipeView converts r for output.
func NewRecipeView(r *recipe.Recipe) RecipeView {
	v := RecipeView{
		Result:  r.Result,
		Count:   r.ResultCount,
		Summary: recipe.Format(r),
	}
	for i, row := range r.Matrix {
		for j, cell := range row {
			if cell != nil {
				v.Grid[i][j] = cell.Name
			}
		}
	}
	return v
}

// NewRecipeViews converts rs for output.
func NewRecipeViews(rs []*recipe.Recipe) []RecipeView {
	out := make([]RecipeView, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRecipeView(r))
	}
	return out
}
