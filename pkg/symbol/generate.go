package symbol

import (
	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
)

// Options configures [Generate].
type Options struct {
	// Params is the calibration to use. Must pass [Params.Validate].
	Params Params

	// IconName names the icon in diagnostics. Defaults to "icon".
	IconName string

	// OnCell, if set, is called after each placeholder is composed.
	OnCell func(Cell)
}

// Report describes the geometry of a generated symbol.
type Report struct {
	Frame Frame
	Cells []Cell
}

// Generate embeds icon into a copy of template and returns the composed
// document. Neither input is modified. Any failure aborts the whole run and
// no document is returned.
func Generate(template, icon *svgdoc.Document, opts Options) (*svgdoc.Document, Report, error) {
	p := opts.Params
	if err := p.Validate(); err != nil {
		return nil, Report{}, err
	}
	name := opts.IconName
	if name == "" {
		name = "icon"
	}
	if err := ValidateIcon(icon, name, p.IconWidth, p.IconHeight); err != nil {
		return nil, Report{}, err
	}

	out := template.Copy()
	frame, err := ReadFrame(out, p)
	if err != nil {
		return nil, Report{}, err
	}
	guides, err := ReadGuides(out)
	if err != nil {
		return nil, Report{}, err
	}
	if err := AdjustMargins(out, frame); err != nil {
		return nil, Report{}, err
	}

	cells := Grid(frame, guides, p)
	for _, c := range cells {
		if err := Compose(out, c.PlaceholderID(), c.Transform, icon); err != nil {
			return nil, Report{}, err
		}
		if opts.OnCell != nil {
			opts.OnCell(c)
		}
	}
	return out, Report{Frame: frame, Cells: cells}, nil
}
