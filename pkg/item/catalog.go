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

package item

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// Catalog indexes items by id and by lower-cased name. When two records
// share an id or a name, the later record wins that key.
type Catalog struct {
	items  []*Item
	byID   map[int]*Item
	byName map[string]*Item
}

// NewCatalog builds a catalog from decoded items. Items keep their input
// order; a record whose id repeats an earlier one takes its position.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items:  make([]*Item, 0, len(items)),
		byID:   make(map[int]*Item, len(items)),
		byName: make(map[string]*Item, len(items)),
	}

	own := append([]Item(nil), items...)
	pos := make(map[int]int, len(own))
	for i := range own {
		it := &own[i]
		if at, dup := pos[it.ID]; dup {
			c.items[at] = it
		} else {
			pos[it.ID] = len(c.items)
			c.items = append(c.items, it)
		}
		c.byID[it.ID] = it
		c.byName[foldName(it.Name)] = it
	}
	return c
}

// foldName lower-cases a name for lookup. A Caser is not safe for
// concurrent use, so one is created per call.
func foldName(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Len returns the number of distinct item ids.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns the items in input order.
func (c *Catalog) All() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByID returns the item with the given id.
func (c *Catalog) ByID(id int) (*Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// ByName returns the item whose lower-cased name equals the lower-cased name.
func (c *Catalog) ByName(name string) (*Item, bool) {
	it, ok := c.byName[foldName(name)]
	return it, ok
}

// Lookup resolves a token as a numeric id first, then as a name.
// A miss fails with ITEM_NOT_FOUND; the error context carries the closest
// names under "suggestions".
func (c *Catalog) Lookup(token string, suggestions int) (*Item, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(token)); err == nil {
		if it, ok := c.byID[id]; ok {
			return it, nil
		}
	}
	if it, ok := c.ByName(token); ok {
		return it, nil
	}

	ctx := map[string]any{"token": token}
	if s := c.Suggest(token, suggestions); len(s) > 0 {
		ctx["suggestions"] = s
	}
	return nil, mcerrors.NewWithContext(mcerrors.ErrCodeItemNotFound,
		fmt.Sprintf("no item found with id or name %q", token), ctx)
}

// Search returns items whose name contains query, ignoring case, in input
// order. A positive limit truncates the result.
func (c *Catalog) Search(query string, limit int) []*Item {
	q := foldName(query)
	out := make([]*Item, 0)
	for _, it := range c.items {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(foldName(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

// Suggest returns up to n item names closest to token by edit distance.
// Names further than a third of the token length (minimum 2) are excluded.
func (c *Catalog) Suggest(token string, n int) []string {
	if n <= 0 || token == "" {
		return nil
	}

	t := foldName(token)
	maxDist := len(t) / 3
	if maxDist < 2 {
		maxDist = 2
	}

	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	for name := range c.byName {
		if d := levenshtein.ComputeDistance(t, name); d <= maxDist {
			cands = append(cands, candidate{name: name, dist: d})
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].name < cands[j].name
	})

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, cd := range cands {
		out[i] = cd.name
	}
	return out
}
