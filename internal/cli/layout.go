package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/pipeline"
)

// layoutCommand creates the layout command for placing a BOM onto a board.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		formats    string
		profile    string
		configFile string
		noCache    bool
		redisAddr  string
		review     bool
		preview    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [bom.csv]",
		Short: "Place a BOM onto a prototyping board and render artifacts",
		Long: `Place a bill-of-materials file onto a breadboard or stripboard.

The layout command reads a BOM (CSV or XLSX), decodes each component's
value, places the components deterministically on the chosen surface, and
renders the result. Output formats: json (the layout), dot (the
connectivity graph), svg (the rendered diagram).

Board dimensions can come from flags or from a named profile in
~/.config/protoboard/config.toml; flags win over the profile.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadLayoutConfig(configFile)
			if err != nil {
				return err
			}
			p, profileName, err := cfg.profile(profile)
			if err != nil {
				return err
			}

			// Profile first, explicit flags on top.
			flagged := opts
			opts = pipeline.Options{}
			p.apply(&opts)
			overrideFromFlags(cmd, &opts, flagged)

			opts.Formats = parseFormats(formats)
			return c.runLayout(cmd, args[0], opts, output, noCache, redisAddr, profileName, review, preview)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: directory of the input file)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "comma-separated output formats: json, dot, svg (default: svg)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for shared caching (host:port)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/protoboard/config.toml)")
	cmd.Flags().StringVar(&profile, "profile", "", "board profile name from the config file")

	// Place flags
	cmd.Flags().StringVarP(&opts.Surface, "surface", "s", "", "board surface: breadboard (default), stripboard")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "stripboard row count")
	cmd.Flags().IntVar(&opts.Columns, "columns", 0, "board column count")
	cmd.Flags().IntVar(&opts.ColumnCeiling, "column-ceiling", 0, "rightmost usable column")
	cmd.Flags().IntVar(&opts.Gap, "gap", 0, "empty columns between neighboring components")
	cmd.Flags().IntVar(&opts.MaxPerType, "max-per-type", 0, "placement cap per component type")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Render flags
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include single-part nets in diagrams")
	cmd.Flags().BoolVar(&review, "review", false, "interactively review the BOM before placing")
	cmd.Flags().BoolVar(&preview, "preview", false, "print a text preview of the board")

	return cmd
}

// loadLayoutConfig loads the config from the explicit path, or the default
// location when the flag is unset.
func loadLayoutConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return Config{}, nil
		}
	}
	return loadConfig(path)
}

// overrideFromFlags copies place options the user set explicitly over the
// profile-derived options.
func overrideFromFlags(cmd *cobra.Command, opts *pipeline.Options, flagged pipeline.Options) {
	if cmd.Flags().Changed("surface") {
		opts.Surface = flagged.Surface
	}
	if cmd.Flags().Changed("rows") {
		opts.Rows = flagged.Rows
	}
	if cmd.Flags().Changed("columns") {
		opts.Columns = flagged.Columns
	}
	if cmd.Flags().Changed("column-ceiling") {
		opts.ColumnCeiling = flagged.ColumnCeiling
	}
	if cmd.Flags().Changed("gap") {
		opts.Gap = flagged.Gap
	}
	if cmd.Flags().Changed("max-per-type") {
		opts.MaxPerType = flagged.MaxPerType
	}
	opts.Refresh = flagged.Refresh
	opts.Detailed = flagged.Detailed
}

// runLayout loads the BOM, runs the pipeline, and writes artifacts.
func (c *CLI) runLayout(cmd *cobra.Command, input string, opts pipeline.Options, output string, noCache bool, redisAddr, profileName string, review, preview bool) error {
	ctx := cmd.Context()

	reader, err := bom.Detect(input, bom.Readers()...)
	if err != nil {
		return err
	}
	records, err := reader.Read(input)
	if err != nil {
		return fmt.Errorf("load BOM %s: %w", input, err)
	}
	c.Logger.Debug("loaded BOM", "format", reader.Format(), "records", len(records))

	if review {
		records, err = reviewBOM(records)
		if err != nil {
			return err
		}
		if records == nil {
			printInfo("Layout aborted")
			return nil
		}
	}

	runner, err := c.newRunner(cmd, noCache, redisAddr, profileName)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d components...", len(records)))
	spinner.Start()

	result, err := runner.Execute(ctx, records, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(input, output, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Layout complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.PlacedCount, result.Stats.DroppedCount, result.CacheInfo.LayoutHit)
	for _, warning := range result.Layout.Warnings {
		printWarning("%s", warning)
	}

	if preview {
		printNewline()
		fmt.Println(boardPreview(result.Layout))
	}

	printNewline()
	printNextStep("Serve the API", "protoboard serve")

	return nil
}

// artifactExtensions maps render formats to file extensions.
var artifactExtensions = map[string]string{
	pipeline.FormatJSON: ".layout.json",
	pipeline.FormatDOT:  ".dot",
	pipeline.FormatSVG:  ".svg",
}

// writeArtifacts writes each rendered artifact next to the input file (or
// into the output directory) and returns the written paths in format order.
func writeArtifacts(input, output string, artifacts map[string][]byte) ([]string, error) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := filepath.Dir(input)
	if output != "" {
		dir = output
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	paths := make([]string, 0, len(artifacts))
	for _, format := range []string{pipeline.FormatJSON, pipeline.FormatDOT, pipeline.FormatSVG} {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, base+artifactExtensions[format])
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
