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
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/Melv1no/mcdata/pkg/dataset"
	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/serializer"
)

const (
	// formatGrid renders recipes as their crafting grid.
	formatGrid = "grid"

	emptyCell = "-"
)

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:      "recipe",
		Usage:     "Show the crafting recipes producing an item",
		ArgsUsage: "<id|name>",
		Description: `Show the crafting recipe of an item in a given version. By default only
the first recipe in data order is shown; --all lists every recipe.

The grid format prints each recipe as its 3x3 crafting grid:

  mcdata recipe --platform pc --version 1.17 --format grid crafting_table`,
		Flags: []cli.Flag{
			platformFlag(),
			versionFlag(),
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "List every recipe producing the item",
			},
			outputFlag(),
			formatFlag(formatGrid),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd, formatGrid)
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

			recipes := ds.GetRecipesForResult(it)
			if len(recipes) == 0 {
				return mcerrors.NewWithContext(mcerrors.ErrCodeRecipeNotFound,
					fmt.Sprintf("no recipe produces %s", it.Name),
					map[string]any{"platform": ds.Platform(), "version": ds.Version(), "item": it.Name})
			}
			if !cmd.Bool("all") {
				recipes = recipes[:1]
			}
			views := dataset.NewRecipeViews(recipes)

			if format == formatGrid {
				w := serializer.NewFileWriterOrStdout(serializer.FormatTable, cmd.String("output"))
				defer func() {
					if err := w.Close(); err != nil {
						slog.Warn("failed to close output", "error", err)
					}
				}()
				return writeGrid(w.Output(), views)
			}

			return writeOutput(ctx, cmd, format, dataset.RecipeResponse{
				Platform: ds.Platform(),
				Version:  ds.Version(),
				Item:     it,
				Recipes:  views,
			})
		},
	}
}

// writeGrid prints each recipe as a heading followed by its crafting grid.
func writeGrid(w io.Writer, views []dataset.RecipeView) error {
	for i, v := range views {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Crafting %s x%d\n", v.Result.DisplayName, v.Count); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range v.Grid {
			cells := make([]string, len(row))
			for j, name := range row {
				if name == "" {
					name = emptyCell
				}
				cells[j] = name
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
