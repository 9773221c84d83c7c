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

	"github.com/urfave/cli/v3"

	"github.com/Melv1no/mcdata/pkg/dataset"
	"github.com/Melv1no/mcdata/pkg/defaults"
)

func itemsCmd() *cli.Command {
	return &cli.Command{
		Name:  "items",
		Usage: "Search items by name",
		Description: `Search the item catalog of a version. Items whose name contains the
query, ignoring case, are listed in catalog order.`,
		Flags: []cli.Flag{
			platformFlag(),
			versionFlag(),
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Name substring to match (default: all items)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: defaults.SearchLimit,
				Usage: "Maximum number of items, 0 for no limit",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			limit := cmd.Int("limit")
			if limit < 0 {
				return fmt.Errorf("limit must not be negative: %d", limit)
			}
			ds, err := openDataset(cmd)
			if err != nil {
				return err
			}

			query := cmd.String("query")
			items := ds.SearchItems(query, limit)
			return writeOutput(ctx, cmd, format, dataset.ItemsResponse{
				Platform: ds.Platform(),
				Version:  ds.Version(),
				Query:    query,
				Count:    len(items),
				Items:    items,
			})
		},
	}
}

func itemCmd() *cli.Command {
	return &cli.Command{
		Name:      "item",
		Usage:     "Look up one item by numeric id or name",
		ArgsUsage: "<id|name>",
		Flags: []cli.Flag{
			platformFlag(),
			versionFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			token, err := tokenArg(cmd)
			if err != nil {
				return err
			}
			ds, err := openDataset(cmd)
			if err != nil {
				return err
			}
			it, err := ds.GetItemByIDOrName(token)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, format, it)
		},
	}
}

// tokenArg returns the single item id or name argument.
func tokenArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected one item id or name, got %d arguments", cmd.Args().Len())
	}
	return cmd.Args().First(), nil
}
