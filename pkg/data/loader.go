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

package data

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// Loader reads raw items and recipes text for a version directory.
type Loader struct {
	provider Provider
}

// NewLoader returns a loader reading through provider.
func NewLoader(provider Provider) *Loader {
	return &Loader{provider: provider}
}

// ReadItems returns the contents of <itemPath>/items.json.
func (l *Loader) ReadItems(itemPath string) ([]byte, error) {
	return l.read(itemPath, ItemsFileName)
}

// ReadRecipes returns the contents of <recipePath>/recipes.json.
func (l *Loader) ReadRecipes(recipePath string) ([]byte, error) {
	return l.read(recipePath, RecipesFileName)
}

func (l *Loader) read(dir, file string) ([]byte, error) {
	dir = strings.Trim(dir, "/")
	if dir == "" || strings.Contains(dir, "..") {
		return nil, mcerrors.NewWithContext(mcerrors.ErrCodeResourceNotFound,
			fmt.Sprintf("invalid data path %q for %s", dir, file),
			map[string]any{"path": dir})
	}

	p := path.Join(dir, file)
	b, err := l.provider.ReadFile(p)
	if err != nil {
		return nil, mcerrors.WrapWithContext(mcerrors.ErrCodeResourceNotFound,
			fmt.Sprintf("resource not found: %s", p), err,
			map[string]any{"path": p, "source": l.provider.Source(p)})
	}

	slog.Debug("loaded data file", "path", p, "bytes", len(b), "source", l.provider.Source(p))
	return b, nil
}
