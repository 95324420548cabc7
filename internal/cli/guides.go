package cli

import (
	"context"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
	"github.com/matzehuels/sfsymbol/pkg/symbol"
)

// guideRow is one line of the guides table.
type guideRow struct {
	id    string
	axis  symbol.Axis
	value float64
}

// guidesCommand creates the guides command for inspecting a template.
func (c *CLI) guidesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "guides [template.svg]",
		Short: "Print the guide positions of a symbol template",
		Long: `Print the margin, baseline and capline guides of a symbol template, along
with the margins a 32x32 icon would be framed with.

Fails on the first missing or ill-formed guide, so it doubles as a template
check before running generate. Without an argument the configured template
is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runGuides(cmd.Context(), path)
		},
	}
}

func (c *CLI) runGuides(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.TemplatePath
	}

	doc, err := svgdoc.ReadFile(path)
	if err != nil {
		return err
	}
	rows, err := readGuideRows(doc)
	if err != nil {
		return err
	}
	for _, r := range rows {
		logger.Debug("read guide", "id", r.id, "axis", r.axis, "value", r.value)
	}

	frame, err := symbol.ReadFrame(doc, cfg.Params)
	if err != nil {
		return err
	}

	printInfo("Guides in %s", StyleHighlight.Render(path))
	printNewline()
	printTable(renderGuideTable(rows))
	printNewline()
	printKeyValue("center", formatFloat(frame.HorizontalCenter))
	printKeyValue("base scale", formatFloat(frame.BaseScale))
	printKeyValue("margins", formatFloat(frame.Adjusted.Left)+" "+iconArrow+" "+formatFloat(frame.Adjusted.Right))
	return nil
}

// readGuideRows reads every guide the generator depends on, in template
// order: the two margins, then baseline and capline per scale.
func readGuideRows(doc *svgdoc.Document) ([]guideRow, error) {
	type guide struct {
		id   string
		axis symbol.Axis
	}
	guides := []guide{
		{symbol.LeftMarginGuide, symbol.AxisX},
		{symbol.RightMarginGuide, symbol.AxisX},
	}
	for _, s := range symbol.Scales {
		guides = append(guides,
			guide{symbol.BaselineGuide(s), symbol.AxisY},
			guide{symbol.CaplineGuide(s), symbol.AxisY})
	}

	rows := make([]guideRow, 0, len(guides))
	for _, g := range guides {
		v, err := symbol.GuideValue(doc, g.axis, g.id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, guideRow{id: g.id, axis: g.axis, value: v})
	}
	return rows, nil
}

// renderGuideTable formats rows as a bordered table.
func renderGuideTable(rows []guideRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{r.id, string(r.axis), formatFloat(r.value)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Guide", "Axis", "Value").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 2 {
				return cellStyle.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return cellStyle
		})
	return t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
