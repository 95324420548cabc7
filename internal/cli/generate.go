package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sfsymbol/pkg/pipeline"
	"github.com/matzehuels/sfsymbol/pkg/preview"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	template string // guide template, overrides the config file
	output   string // output path; empty overwrites the icon
	noCache  bool   // bypass the symbol cache entirely
	refresh  bool   // regenerate even when cached
	preview  string // optional PNG preview of the result
	size     int    // preview size in pixels
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{size: preview.DefaultSize}

	cmd := &cobra.Command{
		Use:   "generate [icon.svg]",
		Short: "Embed an icon into every placeholder of a symbol template",
		Long: `Embed a square SVG icon into every weight and scale placeholder of an SF Symbol
template.

The icon must declare width, height and viewBox matching the configured icon
size (32x32 by default). The template supplies left-margin/right-margin and
Baseline/Capline guides for the S, M and L scales, plus one placeholder group
per weight and scale (e.g. "Regular-M").

Without --output the icon file is overwritten with the generated symbol.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "symbol template (default from config, else template.svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite the icon)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if the symbol is cached")
	cmd.Flags().StringVar(&opts.preview, "preview", "", "also write a PNG preview of the result to this path")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "preview size in pixels")

	return cmd
}

// runGenerate resolves configuration, runs the pipeline and reports the result.
func (c *CLI) runGenerate(ctx context.Context, icon string, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	template := cfg.TemplatePath
	if opts.template != "" {
		template = opts.template
	}
	// Reject a bad preview request before anything is written.
	if opts.preview != "" {
		if err := validatePreview(opts.preview, opts.size); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(opts.noCache || !cfg.CacheEnabled)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	popts := pipeline.Options{
		IconPath:     icon,
		TemplatePath: template,
		OutputPath:   opts.output,
		Params:       cfg.Params,
		CacheTTL:     cfg.CacheTTL,
		Refresh:      opts.refresh,
	}
	if popts.InPlace() {
		logger.Warn("overwriting input icon", "path", icon)
	}

	logger.Infof("Generating symbol from %s", icon)
	logger.Debug("using template", "path", template)
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Generated symbol")

	printSuccess("Generated %s", StyleHighlight.Render(filepath.Base(icon)))
	printFile(result.OutputPath)
	if result.Report != nil {
		printStats(len(result.Report.Cells), result.Report.Frame.BaseScale, result.CacheHit)
	} else {
		printStats(0, 0, result.CacheHit)
	}

	if opts.preview != "" {
		if err := writePreview(opts.preview, result.Data, opts.size); err != nil {
			return err
		}
		printFile(opts.preview)
	}
	return nil
}
