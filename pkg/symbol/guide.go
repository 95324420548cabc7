package symbol

import (
	"strconv"
	"strings"

	"github.com/matzehuels/sfsymbol/pkg/errors"
	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
)

// Axis selects which endpoint attributes of a guide line are read.
type Axis string

// Supported axes. AxisX reads x1/x2 (vertical lines such as margins);
// AxisY reads y1/y2 (horizontal lines such as baselines).
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Guide ids in the template.
const (
	LeftMarginGuide  = "left-margin"
	RightMarginGuide = "right-margin"
)

// BaselineGuide returns the id of the baseline guide for s.
func BaselineGuide(s FontScale) string { return "Baseline-" + string(s) }

// CaplineGuide returns the id of the capline guide for s.
func CaplineGuide(s FontScale) string { return "Capline-" + string(s) }

// GuideValue returns the coordinate of the guide line with the given id.
// Both endpoints along axis must be present and spelled identically.
func GuideValue(doc *svgdoc.Document, axis Axis, id string) (float64, error) {
	if axis != AxisX && axis != AxisY {
		return 0, errors.New(errors.ErrCodeInvalidAxis, "invalid axis %q", axis)
	}
	node, err := doc.ElementByID(id)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidGuide, err, "invalid %s guide", id)
	}
	v1, ok1 := node.Lookup(string(axis) + "1")
	v2, ok2 := node.Lookup(string(axis) + "2")
	if !ok1 || !ok2 || v1 != v2 {
		return 0, errors.New(errors.ErrCodeInvalidGuide, "invalid %s guide", id)
	}
	v, err := strconv.ParseFloat(v1, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidGuide, err, "invalid %s guide", id)
	}
	return v, nil
}

// setGuideValue moves a guide line to v along axis.
func setGuideValue(doc *svgdoc.Document, axis Axis, id string, v float64) error {
	node, err := doc.ElementByID(id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGuide, err, "invalid %s guide", id)
	}
	s := formatCoordinate(v)
	node.SetAttr(string(axis)+"1", s)
	node.SetAttr(string(axis)+"2", s)
	return nil
}

// formatCoordinate writes v as the shortest decimal that reads back as v,
// keeping a ".0" on integral values so rewritten guides look like the
// editor's own output ("100.0", not "100").
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ScaleGuides is the baseline/capline pair of one font scale.
type ScaleGuides struct {
	Baseline float64
	Capline  float64
}

// Height returns the absolute distance between baseline and capline.
func (g ScaleGuides) Height() float64 {
	h := g.Baseline - g.Capline
	if h < 0 {
		return -h
	}
	return h
}

// Middle returns the vertical midpoint of the pair.
func (g ScaleGuides) Middle() float64 {
	return (g.Baseline + g.Capline) / 2
}

// ReadScaleGuides reads the baseline and capline guides for s.
func ReadScaleGuides(doc *svgdoc.Document, s FontScale) (ScaleGuides, error) {
	baseline, err := GuideValue(doc, AxisY, BaselineGuide(s))
	if err != nil {
		return ScaleGuides{}, err
	}
	capline, err := GuideValue(doc, AxisY, CaplineGuide(s))
	if err != nil {
		return ScaleGuides{}, err
	}
	return ScaleGuides{Baseline: baseline, Capline: capline}, nil
}

// ReadGuides reads the baseline/capline pair of every scale in Scales.
func ReadGuides(doc *svgdoc.Document) (map[FontScale]ScaleGuides, error) {
	guides := make(map[FontScale]ScaleGuides, len(Scales))
	for _, s := range Scales {
		g, err := ReadScaleGuides(doc, s)
		if err != nil {
			return nil, err
		}
		guides[s] = g
	}
	return guides, nil
}
