// Command svgpoly converts an SVG file into normalized polylines,
// printed as JSON on the standard output.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/svgpoly/svgicon"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// config is the content of the optional TOML configuration file.
// Command line flags take precedence.
type config struct {
	Tolerance     float64          `toml:"tolerance"`
	MinStep       float64          `toml:"min_step"`
	RadialPrepass bool             `toml:"radial_prepass"`
	Strict        bool             `toml:"strict"`
	Quiet         bool             `toml:"quiet"`
	Indent        bool             `toml:"indent"`
	Fallback      svgicon.Fallback `toml:"fallback"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Tolerance: svgicon.DefaultTolerance}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg config) options(logOutput io.Writer) svgicon.Options {
	opts := svgicon.DefaultOptions()
	opts.Tolerance = cfg.Tolerance
	opts.MinStep = cfg.MinStep
	opts.RadialPrepass = cfg.RadialPrepass
	opts.Fallback = cfg.Fallback
	switch {
	case cfg.Strict:
		opts.ErrorMode = svgicon.StrictErrorMode
	case cfg.Quiet:
		opts.ErrorMode = svgicon.IgnoreErrorMode
	}
	level := slog.LevelWarn
	if cfg.Quiet {
		level = slog.LevelError
	}
	opts.Logger = slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))
	return opts
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      config
	)
	cmd := &cobra.Command{
		Use:   "svgpoly [flags] file.svg",
		Short: "Convert an SVG document into normalized polylines",
		Long: `svgpoly samples every shape of an SVG document by arc length,
maps the points to the [-1, 1] frame of the viewBox, simplifies them
and prints the polylines with their fill, stroke and line width as JSON.
Use "-" to read the document from the standard input.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			// explicit flags override the configuration file
			fs := cmd.Flags()
			if fs.Changed("tolerance") {
				cfg.Tolerance = flags.Tolerance
			}
			if fs.Changed("min-step") {
				cfg.MinStep = flags.MinStep
			}
			if fs.Changed("radial") {
				cfg.RadialPrepass = flags.RadialPrepass
			}
			if fs.Changed("strict") {
				cfg.Strict = flags.Strict
			}
			if fs.Changed("quiet") {
				cfg.Quiet = flags.Quiet
			}
			if fs.Changed("indent") {
				cfg.Indent = flags.Indent
			}
			return run(args[0], cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	fs.Float64VarP(&flags.Tolerance, "tolerance", "t", svgicon.DefaultTolerance, "simplification tolerance, in normalized units")
	fs.Float64Var(&flags.MinStep, "min-step", 0, "minimum sampling step, in user units")
	fs.BoolVar(&flags.RadialPrepass, "radial", false, "run a radial distance pass before Douglas-Peucker")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on unsupported elements")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVar(&flags.Indent, "indent", false, "indent the JSON output")
	return cmd
}

func run(name string, cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	opts := cfg.options(stderr)
	var (
		result *svgicon.ParsedResult
		err    error
	)
	if name == "-" {
		result, err = svgicon.ParseReader(stdin, opts)
	} else {
		result, err = svgicon.ReadFile(name, opts)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	if cfg.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
