package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/catalog"
	"github.com/matzehuels/floorplan/pkg/export"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// planFlags holds the command-line flags for the plan command.
// Plan settings only override the config file when set explicitly.
type planFlags struct {
	input         string  // read the description from a file ("-" for stdin)
	output        string  // write the JSON document to this file
	json          bool    // write the JSON document to stdout instead of a summary
	catalogPath   string  // extra catalog merged over the configured one
	noCache       bool    // disable caching
	refresh       bool    // recompute even when cached
	corridorWidth float64 // feet
	wallThickness float64 // feet
	seed          uint64  // entrance draw seed
	entrance      string  // N, S, E or W
	scale         float64 // pixels per foot
	margin        int     // pixels
}

// planCommand creates the plan command.
func (c *CLI) planCommand() *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan [description]",
		Short: "Generate a floor plan from a description",
		Long: `Generate a floor plan from a short description of a space.

The description is split into clauses on commas, semicolons and "and". Each
clause may start with a quantity ("3", "three", "a") followed by a room type
from the catalog ('floorplan catalog' lists them). Unknown clauses are
skipped.

Seeded runs (--seed) are reproducible and cached locally.

Examples:
  floorplan plan "two exam rooms and a waiting area"
  floorplan plan --seed 42 -o clinic.json "a lobby, 3 offices and a restroom"
  echo "four offices" | floorplan plan --input - --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDescription(f.input, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts, err := c.planOptions(cmd, f)
			if err != nil {
				return err
			}
			return c.runPlan(cmd.Context(), cmd.OutOrStdout(), text, opts, f)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read the description from a file (- for stdin)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the JSON plan to a file")
	cmd.Flags().BoolVar(&f.json, "json", false, "write the JSON plan to stdout")
	cmd.Flags().StringVar(&f.catalogPath, "catalog", "", "catalog file (.toml, .yaml) merged over the built-in rooms")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute and overwrite cached plans")

	cmd.Flags().Float64Var(&f.corridorWidth, "corridor-width", pipeline.DefaultCorridorWidth, "corridor width in feet")
	cmd.Flags().Float64Var(&f.wallThickness, "wall", pipeline.DefaultWallThickness, "exterior wall thickness in feet")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for the entrance draw (0 = random)")
	cmd.Flags().StringVar(&f.entrance, "entrance", "", "force the entrance side: N, S, E or W")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "canvas hint: pixels per foot")
	cmd.Flags().IntVar(&f.margin, "margin", pipeline.DefaultMargin, "canvas hint: margin in pixels")

	return cmd
}

// planOptions layers explicitly set flags over the config file.
func (c *CLI) planOptions(cmd *cobra.Command, f planFlags) (pipeline.Options, error) {
	opts, err := c.Config.Options()
	if err != nil {
		return pipeline.Options{}, err
	}

	set := cmd.Flags().Changed
	if set("corridor-width") {
		opts.CorridorWidth = f.corridorWidth
	}
	if set("wall") {
		opts.WallThickness = f.wallThickness
	}
	if set("seed") {
		opts.Seed = f.seed
	}
	if set("entrance") {
		opts.Entrance = f.entrance
	}
	if set("scale") {
		opts.Scale = f.scale
	}
	if set("margin") {
		opts.Margin = f.margin
	}
	opts.Refresh = f.refresh
	opts.Logger = c.Logger

	if f.catalogPath != "" {
		extra, err := catalog.Load(f.catalogPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		if opts.Catalog, err = opts.Catalog.Merge(extra); err != nil {
			return pipeline.Options{}, err
		}
	}
	return opts, nil
}

// runPlan generates the plan and writes the requested outputs.
func (c *CLI) runPlan(ctx context.Context, stdout io.Writer, text string, opts pipeline.Options, f planFlags) error {
	runner, store, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer store.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Generate(ctx, text, opts)
	if err != nil {
		return err
	}

	if res.Empty() {
		printWarning("No known room types in %q", text)
		for _, clause := range res.Dropped {
			printDetail("skipped: %s", clause)
		}
		printNextStep("List room types", appName+" catalog")
		return nil
	}
	prog.done("Generated plan")

	doc, err := export.FromResult(res)
	if err != nil {
		return err
	}
	if f.json {
		return export.WriteJSON(doc, stdout)
	}

	printPlanSummary(doc, res.CacheHit)
	for _, clause := range res.Dropped {
		printInfo("skipped %q", clause)
	}
	if f.output != "" {
		if err := export.ExportJSON(doc, f.output); err != nil {
			return err
		}
		printFile(f.output)
	}
	return nil
}

// printPlanSummary prints the plan's key figures and rooms.
func printPlanSummary(doc export.Document, cached bool) {
	printSuccess("Planned %s", StyleTitle.Render(fmt.Sprintf("%d rooms", len(doc.Rooms))))
	printStats(len(doc.Rooms), doc.Width*doc.Height, cached)
	printKeyValue("Plan", doc.ID)
	printKeyValue("Corridor", fmt.Sprintf("%s, %s ft wide", doc.Orientation, formatFeet(doc.CorridorWidth)))
	printKeyValue("Footprint", fmt.Sprintf("%s x %s ft", formatFeet(doc.Width), formatFeet(doc.Height)))
	printKeyValue("Entrance", string(doc.Entrance))
	if doc.Canvas != nil {
		printKeyValue("Canvas", fmt.Sprintf("%dx%d px", doc.Canvas.Width, doc.Canvas.Height))
	}
	for _, r := range doc.Rooms {
		printDetail("%s %-16s %s x %s ft at (%s, %s)", r.Side, r.Label,
			formatFeet(r.W), formatFeet(r.H), formatFeet(r.X), formatFeet(r.Y))
	}
}

// readDescription joins args, or reads path when given ("-" is stdin).
func readDescription(path string, args []string, stdin io.Reader) (string, error) {
	if path == "" {
		if len(args) == 0 {
			return "", fmt.Errorf("a description is required (argument or --input)")
		}
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", fmt.Errorf("use either a description argument or --input, not both")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
