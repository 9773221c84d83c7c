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
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// DefaultMaxFileSize is the default maximum external file size (64MB).
// Recipe tables for recent versions run to tens of megabytes.
const DefaultMaxFileSize = 64 * 1024 * 1024

// LayeredProviderConfig configures the layered data provider.
type LayeredProviderConfig struct {
	// ExternalDir is the path to the external data directory.
	ExternalDir string

	// MaxFileSize is the maximum allowed file size in bytes (default: 64MB).
	MaxFileSize int64

	// AllowSymlinks allows symlinks in the external directory (default: false).
	AllowSymlinks bool
}

// LayeredProvider overlays an external directory on top of another provider.
// For PathsFileName: merges external platform versions over the base table.
// For all other files: external completely replaces the base if present.
type LayeredProvider struct {
	base        Provider
	externalDir string

	mergeOnce   sync.Once
	mergedPaths []byte
	mergedErr   error

	// relative slash paths of files found in externalDir
	externalFiles map[string]bool
}

// NewLayeredProvider creates a provider that layers external data over base.
// Returns an error if:
// - External directory doesn't exist
// - External directory doesn't contain PathsFileName
// - Path traversal is detected
// - Symlinks are present and not allowed
// - File size exceeds limits
func NewLayeredProvider(base Provider, config LayeredProviderConfig) (*LayeredProvider, error) {
	slog.Debug("creating layered data provider",
		"external_dir", config.ExternalDir,
		"max_file_size", config.MaxFileSize,
		"allow_symlinks", config.AllowSymlinks)

	if config.MaxFileSize == 0 {
		config.MaxFileSize = DefaultMaxFileSize
	}

	info, err := os.Stat(config.ExternalDir)
	if err != nil {
		return nil, mcerrors.Wrap(mcerrors.ErrCodeNotFound,
			fmt.Sprintf("external data directory not found: %s", config.ExternalDir), err)
	}
	if !info.IsDir() {
		return nil, mcerrors.New(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("external data path is not a directory: %s", config.ExternalDir))
	}

	pathsFile := filepath.Join(config.ExternalDir, PathsFileName)
	if _, statErr := os.Stat(pathsFile); statErr != nil {
		return nil, mcerrors.New(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s is required in external data directory: %s", PathsFileName, config.ExternalDir))
	}

	externalFiles := make(map[string]bool)
	err = filepath.WalkDir(config.ExternalDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(config.ExternalDir, p)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}
		rel = filepath.ToSlash(rel)

		if strings.Contains(rel, "..") {
			return mcerrors.New(mcerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("path traversal detected: %s", rel))
		}

		if !config.AllowSymlinks && rel != "." && d.Type()&fs.ModeSymlink != 0 {
			return mcerrors.New(mcerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("symlinks not allowed: %s", rel))
		}

		if d.IsDir() {
			return nil
		}

		fi, statErr := d.Info()
		if statErr != nil {
			return fmt.Errorf("failed to get file info: %w", statErr)
		}
		if fi.Size() > config.MaxFileSize {
			return mcerrors.New(mcerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("file too large (%d bytes, max %d): %s", fi.Size(), config.MaxFileSize, rel))
		}

		externalFiles[rel] = true
		slog.Debug("discovered external file", "path", rel, "size", fi.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("layered data provider initialized",
		"external_dir", config.ExternalDir,
		"external_files", len(externalFiles))

	return &LayeredProvider{
		base:          base,
		externalDir:   config.ExternalDir,
		externalFiles: externalFiles,
	}, nil
}

// ReadFile reads a file, checking the external directory first.
func (p *LayeredProvider) ReadFile(name string) ([]byte, error) {
	name = strings.Trim(name, "/")
	if name == PathsFileName {
		return p.paths()
	}

	if p.externalFiles[name] {
		b, err := os.ReadFile(filepath.Join(p.externalDir, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("failed to read external file %s: %w", name, err)
		}
		slog.Debug("read from external data directory", "path", name)
		return b, nil
	}

	slog.Debug("falling back to base data", "path", name)
	return p.base.ReadFile(name)
}

// WalkDir walks both directories. External entries take precedence.
func (p *LayeredProvider) WalkDir(root string, fn fs.WalkDirFunc) error {
	root = strings.Trim(root, "/")
	visited := make(map[string]bool)

	externalRoot := filepath.Join(p.externalDir, filepath.FromSlash(root))
	if _, err := os.Stat(externalRoot); err == nil {
		err := filepath.WalkDir(externalRoot, func(fp string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(p.externalDir, fp)
			if relErr != nil {
				return relErr
			}
			rel = filepath.ToSlash(rel)
			if rel == "." {
				rel = ""
			}
			visited[rel] = true
			return fn(rel, d, nil)
		})
		if err != nil {
			return err
		}
	}

	return p.base.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if visited[name] {
			return nil
		}
		return fn(name, d, nil)
	})
}

// Source returns "external" or the base source depending on where the file comes from.
func (p *LayeredProvider) Source(name string) string {
	name = strings.Trim(name, "/")
	switch {
	case name == PathsFileName:
		return "merged (" + p.base.Source(name) + " + " + sourceExternal + ")"
	case p.externalFiles[name]:
		return sourceExternal
	default:
		return p.base.Source(name)
	}
}

// pathTable mirrors dataPaths.json without interpreting version entries.
type pathTable map[string]map[string]json.RawMessage

func (p *LayeredProvider) paths() ([]byte, error) {
	p.mergeOnce.Do(func() {
		p.mergedPaths, p.mergedErr = p.mergePaths()
	})
	return p.mergedPaths, p.mergedErr
}

func (p *LayeredProvider) mergePaths() ([]byte, error) {
	baseRaw, err := p.base.ReadFile(PathsFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read base %s: %w", PathsFileName, err)
	}
	var base pathTable
	if err := json.Unmarshal(baseRaw, &base); err != nil {
		return nil, mcerrors.Wrap(mcerrors.ErrCodeMalformedData,
			fmt.Sprintf("failed to parse base %s", PathsFileName), err)
	}

	extRaw, err := os.ReadFile(filepath.Join(p.externalDir, PathsFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read external %s: %w", PathsFileName, err)
	}
	var ext pathTable
	if err := json.Unmarshal(extRaw, &ext); err != nil {
		return nil, mcerrors.Wrap(mcerrors.ErrCodeMalformedData,
			fmt.Sprintf("failed to parse external %s", PathsFileName), err)
	}

	merged := mergePathTables(base, ext)

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize merged %s: %w", PathsFileName, err)
	}

	slog.Info("merged version path tables",
		"base_platforms", len(base),
		"external_platforms", len(ext),
		"merged_platforms", len(merged))
	return out, nil
}

// mergePathTables overlays ext onto base. A version present in both is
// taken whole from ext.
func mergePathTables(base, ext pathTable) pathTable {
	merged := make(pathTable, len(base)+len(ext))
	for platform, versions := range base {
		m := make(map[string]json.RawMessage, len(versions))
		for v, entry := range versions {
			m[v] = entry
		}
		merged[platform] = m
	}
	for platform, versions := range ext {
		m, ok := merged[platform]
		if !ok {
			m = make(map[string]json.RawMessage, len(versions))
			merged[platform] = m
		}
		for v, entry := range versions {
			if _, exists := m[v]; exists {
				slog.Debug("version overridden from external", "platform", platform, "version", v)
			}
			m[v] = entry
		}
	}
	return merged
}
