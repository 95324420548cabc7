package symbol

import (
	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
)

// Margins is the pair of vertical margin guide positions.
type Margins struct {
	Left  float64
	Right float64
}

// Center returns the midpoint between the two margins.
func (m Margins) Center() float64 {
	return (m.Left + m.Right) / 2
}

// Frame is the geometry shared by every grid cell, derived from the
// template's margin guides and the reference scale's baseline/capline.
type Frame struct {
	// BaseScale maps icon units to template units at the reference scale.
	BaseScale float64

	// HorizontalCenter is the midpoint of the template's original margins.
	HorizontalCenter float64

	// ScaledWidth and ScaledHeight are the icon size at BaseScale.
	ScaledWidth  float64
	ScaledHeight float64

	// Original holds the margins as authored in the template.
	Original Margins

	// Adjusted holds the margins re-centred around the scaled icon.
	Adjusted Margins
}

// BaseScale returns the scale that fits an icon of iconHeight between a
// baseline and capline, multiplied by additionalScaling.
func BaseScale(baseline, capline float64, iconHeight int, additionalScaling float64) float64 {
	return ScaleGuides{Baseline: baseline, Capline: capline}.Height() / float64(iconHeight) * additionalScaling
}

// ReadFrame reads the margin guides and the reference scale's guides and
// computes the shared frame. The document is not modified.
func ReadFrame(doc *svgdoc.Document, p Params) (Frame, error) {
	left, err := GuideValue(doc, AxisX, LeftMarginGuide)
	if err != nil {
		return Frame{}, err
	}
	right, err := GuideValue(doc, AxisX, RightMarginGuide)
	if err != nil {
		return Frame{}, err
	}
	ref, err := ReadScaleGuides(doc, ReferenceScale)
	if err != nil {
		return Frame{}, err
	}
	return NewFrame(Margins{Left: left, Right: right}, ref, p), nil
}

// NewFrame computes the frame for the given original margins and reference
// baseline/capline pair.
func NewFrame(original Margins, ref ScaleGuides, p Params) Frame {
	scale := BaseScale(ref.Baseline, ref.Capline, p.IconHeight, p.AdditionalScaling)
	f := Frame{
		BaseScale:        scale,
		HorizontalCenter: original.Center(),
		ScaledWidth:      float64(p.IconWidth) * scale,
		ScaledHeight:     float64(p.IconHeight) * scale,
		Original:         original,
	}
	d := f.ScaledWidth/2 + p.MarginLineWidth + p.AdditionalHorizontalMargin
	f.Adjusted = Margins{
		Left:  f.HorizontalCenter - d,
		Right: f.HorizontalCenter + d,
	}
	return f
}

// AdjustMargins moves the left and right margin guides to f.Adjusted.
// No other guide is touched.
func AdjustMargins(doc *svgdoc.Document, f Frame) error {
	if err := setGuideValue(doc, AxisX, LeftMarginGuide, f.Adjusted.Left); err != nil {
		return err
	}
	return setGuideValue(doc, AxisX, RightMarginGuide, f.Adjusted.Right)
}
