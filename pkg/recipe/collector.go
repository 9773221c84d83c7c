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
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// Collect decodes recipes.json into raw variants. Records keep the order of
// their keys in the document and, within an array, their array order.
// Values that are neither objects nor arrays are skipped, as are array
// elements that are not objects.
func Collect(raw []byte) ([]RawVariant, error) {
	if !gjson.ValidBytes(raw) {
		return nil, mcerrors.New(mcerrors.ErrCodeMalformedData,
			fmt.Sprintf("invalid recipes.json (%d bytes)", len(raw)))
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, mcerrors.New(mcerrors.ErrCodeMalformedData,
			"recipes.json must be a JSON object keyed by recipe name")
	}

	var out []RawVariant
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		switch {
		case value.IsObject():
			out = append(out, decodeVariant(name, value))
		case value.IsArray():
			value.ForEach(func(_, el gjson.Result) bool {
				if el.IsObject() {
					out = append(out, decodeVariant(name, el))
				}
				return true
			})
		}
		return true
	})
	return out, nil
}

func decodeVariant(name string, v gjson.Result) RawVariant {
	rv := RawVariant{Name: name}

	if res := v.Get("result"); res.IsObject() {
		rv.Result = &RawResult{
			ID:       intField(res, "id"),
			Metadata: intField(res, "metadata"),
			Count:    intField(res, "count"),
		}
	}

	// inShape wins when a record carries both.
	if shape := v.Get("inShape"); shape.IsArray() {
		s := Shaped{}
		shape.ForEach(func(_, row gjson.Result) bool {
			if !row.IsArray() {
				s.Rows = append(s.Rows, nil)
				return true
			}
			var cells []*Ingredient
			row.ForEach(func(_, cell gjson.Result) bool {
				cells = append(cells, decodeIngredient(cell))
				return true
			})
			s.Rows = append(s.Rows, cells)
			return true
		})
		rv.Shape = s
	} else if list := v.Get("ingredients"); list.IsArray() {
		s := Shapeless{}
		list.ForEach(func(_, ing gjson.Result) bool {
			s.Ingredients = append(s.Ingredients, decodeIngredient(ing))
			return true
		})
		rv.Shape = s
	}

	return rv
}

func decodeIngredient(v gjson.Result) *Ingredient {
	if id, ok := asInt(v); ok {
		return &Ingredient{ID: id}
	}
	if v.IsObject() {
		ing := &Ingredient{ID: -1, Metadata: intField(v, "metadata")}
		if id := intField(v, "id"); id != nil {
			ing.ID = *id
		}
		return ing
	}
	return nil
}

func intField(v gjson.Result, key string) *int {
	if n, ok := asInt(v.Get(key)); ok {
		return &n
	}
	return nil
}

// asInt accepts JSON numbers with an integral value that fits in an int.
func asInt(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	if v.Num != math.Trunc(v.Num) || v.Num > math.MaxInt32 || v.Num < math.MinInt32 {
		return 0, false
	}
	return int(v.Int()), true
}
