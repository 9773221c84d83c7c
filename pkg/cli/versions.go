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

	"github.com/urfave/cli/v3"

	"github.com/Melv1no/mcdata/pkg/dataset"
	"github.com/Melv1no/mcdata/pkg/registry"
)

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List registered versions per platform",
		Description: `List every registered version of each supported platform and
whether it ships recipes.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			reg, _, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, format, dataset.VersionsResponse{
				Platforms: reg.AvailableVersions(),
			})
		},
	}
}

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:  "latest",
		Usage: "Print the newest version with recipes for a platform",
		Flags: []cli.Flag{
			platformFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			platform, err := registry.ParsePlatform(cmd.String("platform"))
			if err != nil {
				return err
			}
			reg, _, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			v, err := reg.LatestVersionWithRecipes(platform)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, format, dataset.LatestResponse{Platform: platform, Version: v})
		},
	}
}
