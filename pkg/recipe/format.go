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
	"strconv"
	"strings"
)

// Format summarizes the ingredients of r as "{count}x{name}" tokens joined
// by spaces. Tokens follow the first appearance of each name scanning the
// matrix row by row. Empty cells are ignored; an empty matrix yields "".
func Format(r *Recipe) string {
	if r == nil {
		return ""
	}

	var order []string
	counts := make(map[string]int)
	for _, it := range r.Ingredients() {
		if _, seen := counts[it.Name]; !seen {
			order = append(order, it.Name)
		}
		counts[it.Name]++
	}

	var b strings.Builder
	for i, name := range order {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(counts[name]))
		b.WriteByte('x')
		b.WriteString(name)
	}
	return b.String()
}
