package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sfsymbol/pkg/errors"
	"github.com/matzehuels/sfsymbol/pkg/pipeline"
	"github.com/matzehuels/sfsymbol/pkg/preview"
)

// previewCommand creates the preview command for rasterising an SVG.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "preview [file.svg]",
		Short: "Render an SVG (icon or generated symbol) to PNG",
		Long: `Render an SVG to a PNG on a white background.

Works on source icons and on generated symbols alike. Text labels in the
template are not drawn; guides and glyphs are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], output, size)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with .png extension)")
	cmd.Flags().IntVar(&size, "size", preview.DefaultSize, "length of the longer side in pixels")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input, output string, size int) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateSVGPath(input); err != nil {
		return err
	}
	if output == "" {
		output = pngPath(input)
	}

	data, err := os.ReadFile(input)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", input)
	}

	logger.Infof("Rendering %s", input)
	prog := newProgress(logger)
	if err := writePreview(output, data, size); err != nil {
		return err
	}
	prog.done("Rendered preview")

	printSuccess("Rendered %s", StyleHighlight.Render(filepath.Base(input)))
	printFile(output)
	return nil
}

// writePreview rasterises svg and writes the PNG atomically to path.
func writePreview(path string, svg []byte, size int) error {
	if err := validatePreview(path, size); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := preview.WritePNG(&buf, svg, preview.Options{Size: size}); err != nil {
		return err
	}
	return pipeline.WriteFile(path, buf.Bytes())
}

// validatePreview checks a preview destination and size.
func validatePreview(path string, size int) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return errors.New(errors.ErrCodeInvalidPath, "preview path %s must end in .png", path)
	}
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "preview size must be positive, got %d", size)
	}
	return nil
}

// pngPath swaps the extension of an SVG path for .png.
func pngPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
}
