package symbol

import (
	"github.com/matzehuels/sfsymbol/pkg/errors"
)

// FontScale is one of the three symbol size classes.
type FontScale string

// Font scales in generation order.
const (
	ScaleSmall  FontScale = "S"
	ScaleMedium FontScale = "M"
	ScaleLarge  FontScale = "L"
)

// FontWeight is one of the nine symbol weight classes.
type FontWeight string

// Font weights from lightest to heaviest.
const (
	WeightUltralight FontWeight = "Ultralight"
	WeightThin       FontWeight = "Thin"
	WeightLight      FontWeight = "Light"
	WeightRegular    FontWeight = "Regular"
	WeightMedium     FontWeight = "Medium"
	WeightSemibold   FontWeight = "Semibold"
	WeightBold       FontWeight = "Bold"
	WeightHeavy      FontWeight = "Heavy"
	WeightBlack      FontWeight = "Black"
)

// Scales lists every FontScale in generation order.
var Scales = []FontScale{ScaleSmall, ScaleMedium, ScaleLarge}

// Weights lists every FontWeight in generation order.
var Weights = []FontWeight{
	WeightUltralight, WeightThin, WeightLight,
	WeightRegular, WeightMedium, WeightSemibold,
	WeightBold, WeightHeavy, WeightBlack,
}

// ReferenceScale is the scale whose guides determine the base scale.
const ReferenceScale = ScaleMedium

// regularIndex is the position of WeightRegular in Weights; weight columns
// are laid out around it.
const regularIndex = 3

// Default geometry values.
const (
	DefaultIconWidth                  = 32
	DefaultIconHeight                 = 32
	DefaultAdditionalScaling          = 1.7
	DefaultMarginLineWidth            = 0.5
	DefaultAdditionalHorizontalMargin = 4.0
	DefaultSpaceBetweenCenters        = 296.71
	DefaultInitialSymbolScale         = 0.775
)

// defaultSymbolScaleAdditions is added to the running symbol scale at each
// weight step, lightest first.
var defaultSymbolScaleAdditions = []float64{0.001, 0.002, 0.003, 0.004, 0.04, 0.03, 0.03, 0.06, 0.04}

// Params holds the icon canvas size and the calibration values used by the
// transform engine.
type Params struct {
	// IconWidth and IconHeight are the canvas size every icon must declare.
	IconWidth  int
	IconHeight int

	// AdditionalScaling multiplies the baseline/capline ratio so symbols
	// come out close to the size of system symbols.
	AdditionalScaling float64

	// MarginLineWidth is the stroke width of the margin guides.
	MarginLineWidth float64

	// AdditionalHorizontalMargin is white space added on each side.
	AdditionalHorizontalMargin float64

	// SpaceBetweenCenters is the horizontal pitch between weight columns.
	SpaceBetweenCenters float64

	// InitialSymbolScale seeds the running symbol scale.
	InitialSymbolScale float64

	// SymbolScaleAdditions has one entry per weight.
	SymbolScaleAdditions []float64
}

// DefaultParams returns the stock calibration.
func DefaultParams() Params {
	return Params{
		IconWidth:                  DefaultIconWidth,
		IconHeight:                 DefaultIconHeight,
		AdditionalScaling:          DefaultAdditionalScaling,
		MarginLineWidth:            DefaultMarginLineWidth,
		AdditionalHorizontalMargin: DefaultAdditionalHorizontalMargin,
		SpaceBetweenCenters:        DefaultSpaceBetweenCenters,
		InitialSymbolScale:         DefaultInitialSymbolScale,
		SymbolScaleAdditions:       append([]float64(nil), defaultSymbolScaleAdditions...),
	}
}

// Validate checks that p can drive a generation run.
func (p Params) Validate() error {
	if p.IconWidth <= 0 || p.IconHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "icon size must be positive, got (%d, %d)", p.IconWidth, p.IconHeight)
	}
	if p.AdditionalScaling <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "additional scaling must be positive, got %v", p.AdditionalScaling)
	}
	if p.InitialSymbolScale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "initial symbol scale must be positive, got %v", p.InitialSymbolScale)
	}
	if len(p.SymbolScaleAdditions) != len(Weights) {
		return errors.New(errors.ErrCodeInvalidInput, "need %d symbol scale additions, got %d", len(Weights), len(p.SymbolScaleAdditions))
	}
	for i, a := range p.SymbolScaleAdditions {
		if a < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "symbol scale addition for %s is negative: %v", Weights[i], a)
		}
	}
	return nil
}
