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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Melv1no/mcdata/pkg/data"
	"github.com/Melv1no/mcdata/pkg/dataset"
	"github.com/Melv1no/mcdata/pkg/registry"
	"github.com/Melv1no/mcdata/pkg/serializer"
)

// latestVersion selects the newest version with recipes.
const latestVersion = "latest"

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag(extra ...string) cli.Flag {
	supported := append(serializer.SupportedFormats(), extra...)
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(supported, ", ")),
	}
}

func platformFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "platform",
		Aliases:  []string{"p"},
		Required: true,
		Usage: fmt.Sprintf("Platform (supported values: %s)",
			strings.Join(registry.SupportedPlatforms(), ", ")),
	}
}

func versionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "version",
		Value: latestVersion,
		Usage: `Game version (e.g. 1.17), or "latest" for the newest version with recipes`,
	}
}

// parseOutputFormat reads --format, accepting the serializer formats and any
// extra formats the command renders itself.
func parseOutputFormat(cmd *cli.Command, extra ...string) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	for _, e := range extra {
		if string(f) == e {
			return f, nil
		}
	}
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// openRegistry loads the path table from --data-dir over the embedded data.
func openRegistry(cmd *cli.Command) (*registry.Registry, data.Provider, error) {
	provider, err := data.Open(cmd.String("data-dir"))
	if err != nil {
		return nil, nil, err
	}
	reg, err := registry.Load(provider)
	if err != nil {
		return nil, nil, err
	}
	return reg, provider, nil
}

// openDataset builds the dataset named by --platform and --version.
func openDataset(cmd *cli.Command) (*dataset.Dataset, error) {
	reg, provider, err := openRegistry(cmd)
	if err != nil {
		return nil, err
	}

	platform, err := registry.ParsePlatform(cmd.String("platform"))
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cmd.String("version"))
	if version == "" || strings.EqualFold(version, latestVersion) {
		if version, err = reg.LatestVersionWithRecipes(platform); err != nil {
			return nil, err
		}
		slog.Debug("resolved latest version", "platform", platform, "version", version)
	}

	return dataset.New(reg, data.NewLoader(provider), platform, version)
}

// writeOutput serializes v to --output in format.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()
	return w.Serialize(ctx, v)
}
