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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Normalization outcomes per raw variant
	recipeVariants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcdata_recipe_variants_total",
			Help: "Total number of raw recipe variants processed, by outcome",
		},
		[]string{"outcome"},
	)

	// Ingredient cells that named an id missing from the catalog
	recipeUnresolvedIngredients = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mcdata_recipe_unresolved_ingredients_total",
			Help: "Total number of ingredient cells dropped because their item id was not in the catalog",
		},
	)
)
