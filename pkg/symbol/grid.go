package symbol

import (
	"fmt"
)

// Transform is a uniform scale followed by a translation.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Matrix formats t as an SVG matrix() transform with six fixed-point numbers.
func (t Transform) Matrix() string {
	return fmt.Sprintf("matrix(%f %f %f %f %f %f)", t.Scale, 0.0, 0.0, t.Scale, t.TranslateX, t.TranslateY)
}

// Cell is one (scale, weight) slot of the grid.
type Cell struct {
	Scale  FontScale
	Weight FontWeight

	// SymbolScale is the running symbol scale at this cell.
	SymbolScale float64

	Transform Transform
}

// PlaceholderID returns the template id of the cell's placeholder node.
func (c Cell) PlaceholderID() string {
	return PlaceholderID(c.Weight, c.Scale)
}

// PlaceholderID returns the template id for a weight and scale.
func PlaceholderID(w FontWeight, s FontScale) string {
	return string(w) + "-" + string(s)
}

// Grid computes one cell per (scale, weight) pair, scale-major. guides must
// hold an entry for every scale in Scales.
//
// The symbol scale starts at p.InitialSymbolScale and grows by
// p.SymbolScaleAdditions[i] at every weight step. It is carried across
// scales, not reset, so each scale continues where the previous one ended.
func Grid(f Frame, guides map[FontScale]ScaleGuides, p Params) []Cell {
	cells := make([]Cell, 0, len(Scales)*len(Weights))
	symbolScale := p.InitialSymbolScale
	for _, s := range Scales {
		g := guides[s]
		for i, w := range Weights {
			symbolScale += p.SymbolScaleAdditions[i]
			cells = append(cells, Cell{
				Scale:       s,
				Weight:      w,
				SymbolScale: symbolScale,
				Transform:   cellTransform(f, g, p.SpaceBetweenCenters, i-regularIndex, symbolScale),
			})
		}
	}
	return cells
}

func cellTransform(f Frame, g ScaleGuides, pitch float64, offset int, symbolScale float64) Transform {
	width := f.ScaledWidth * symbolScale
	height := f.ScaledHeight * symbolScale
	return Transform{
		Scale:      f.BaseScale * symbolScale,
		TranslateX: columnX(f.HorizontalCenter, pitch, offset, width),
		TranslateY: g.Middle() - height/2,
	}
}

// columnX returns the left edge of a shape of the given width centred on the
// column offset steps away from center. Negative offsets are lighter
// weights, placed to the left.
func columnX(center, pitch float64, offset int, width float64) float64 {
	return center + pitch*float64(offset) - width/2
}
