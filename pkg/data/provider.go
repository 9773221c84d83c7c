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
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

//go:embed minecraft-data
var dataFS embed.FS

// embeddedRoot is the directory inside dataFS holding the data tree.
const embeddedRoot = "minecraft-data"

const (
	// PathsFileName is the name of the platform/version path table.
	PathsFileName = "dataPaths.json"

	// ItemsFileName is the items file inside an items directory.
	ItemsFileName = "items.json"

	// RecipesFileName is the recipes file inside a recipes directory.
	RecipesFileName = "recipes.json"

	sourceEmbedded = "embedded"
	sourceExternal = "external"
)

// Provider abstracts access to data files.
// This allows layering external directories over embedded data.
type Provider interface {
	// ReadFile reads a file by path (relative to data directory).
	ReadFile(path string) ([]byte, error)

	// WalkDir walks the directory tree rooted at root.
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Source returns a description of where data came from (for debugging).
	Source(path string) string
}

// Open returns the embedded data, layered under dir when dir is set.
func Open(dir string) (Provider, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Embedded(), nil
	}
	p, err := NewLayeredProvider(Embedded(), LayeredProviderConfig{ExternalDir: dir})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FSProvider serves data files from an fs.FS, optionally below a prefix.
type FSProvider struct {
	fsys   fs.FS
	prefix string
	source string
}

// NewFSProvider creates a provider from a filesystem. An empty prefix serves
// the filesystem root.
func NewFSProvider(fsys fs.FS, prefix string) *FSProvider {
	return &FSProvider{
		fsys:   fsys,
		prefix: strings.Trim(prefix, "/"),
		source: "fs",
	}
}

// Embedded returns the provider over the data compiled into the binary.
func Embedded() *FSProvider {
	p := NewFSProvider(dataFS, embeddedRoot)
	p.source = sourceEmbedded
	return p
}

func (p *FSProvider) full(name string) string {
	name = strings.Trim(name, "/")
	switch {
	case p.prefix == "" && name == "":
		return "."
	case p.prefix == "":
		return name
	case name == "":
		return p.prefix
	default:
		return path.Join(p.prefix, name)
	}
}

// ReadFile reads a file from the filesystem.
func (p *FSProvider) ReadFile(name string) ([]byte, error) {
	fullPath := p.full(name)
	slog.Debug("reading data file", "path", name, "fullPath", fullPath, "source", p.source)
	return fs.ReadFile(p.fsys, fullPath)
}

// WalkDir walks the filesystem, passing paths relative to the provider root.
func (p *FSProvider) WalkDir(root string, fn fs.WalkDirFunc) error {
	fullRoot := p.full(root)
	slog.Debug("walking data filesystem", "root", root, "fullRoot", fullRoot)
	return fs.WalkDir(p.fsys, fullRoot, func(name string, d fs.DirEntry, err error) error {
		rel := name
		switch {
		case p.prefix == "" && name == ".":
			rel = ""
		case p.prefix == "":
		case name == p.prefix:
			rel = ""
		default:
			rel = strings.TrimPrefix(name, p.prefix+"/")
		}
		return fn(rel, d, err)
	})
}

// Source returns the provider's source name for all paths.
func (p *FSProvider) Source(string) string {
	return p.source
}
