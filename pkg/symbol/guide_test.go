package symbol

import (
	"testing"

	"github.com/matzehuels/sfsymbol/pkg/errors"
)

func TestGuideValue(t *testing.T) {
	doc := mustParse(t, `<svg>
  <line id="same" x1="5.0" x2="5.0" y1="1" y2="9"/>
  <line id="differ" x1="5.0" x2="6.0"/>
  <line id="spelling" x1="5" x2="5.0"/>
  <line id="half" x1="5.0"/>
  <line id="nan" x1="abc" x2="abc"/>
  <line id="flat" y1="-12.25" y2="-12.25"/>
</svg>`)

	tests := []struct {
		name     string
		axis     Axis
		id       string
		want     float64
		wantCode errors.Code
	}{
		{"equal endpoints", AxisX, "same", 5.0, ""},
		{"y axis", AxisY, "flat", -12.25, ""},
		{"unequal endpoints", AxisX, "differ", 0, errors.ErrCodeInvalidGuide},
		{"different spelling", AxisX, "spelling", 0, errors.ErrCodeInvalidGuide},
		{"missing endpoint", AxisX, "half", 0, errors.ErrCodeInvalidGuide},
		{"wrong axis attributes", AxisY, "differ", 0, errors.ErrCodeInvalidGuide},
		{"not a number", AxisX, "nan", 0, errors.ErrCodeInvalidGuide},
		{"missing guide", AxisX, "absent", 0, errors.ErrCodeInvalidGuide},
		{"invalid axis", Axis("z"), "same", 0, errors.ErrCodeInvalidAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GuideValue(doc, tt.axis, tt.id)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("GuideValue() error = %v, want %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("GuideValue() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GuideValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadGuides(t *testing.T) {
	doc := mustParse(t, templateSVG(100, 200, testGuides))

	got, err := ReadGuides(doc)
	if err != nil {
		t.Fatalf("ReadGuides() error: %v", err)
	}
	for _, s := range Scales {
		if got[s] != testGuides[s] {
			t.Errorf("ReadGuides()[%s] = %+v, want %+v", s, got[s], testGuides[s])
		}
	}
}

func TestScaleGuides(t *testing.T) {
	g := ScaleGuides{Baseline: 10, Capline: 0}
	if g.Height() != 10 {
		t.Errorf("Height() = %v, want 10", g.Height())
	}
	if g.Middle() != 5 {
		t.Errorf("Middle() = %v, want 5", g.Middle())
	}

	// Inverted guides still give a positive height.
	inv := ScaleGuides{Baseline: 0, Capline: 10}
	if inv.Height() != 10 {
		t.Errorf("inverted Height() = %v, want 10", inv.Height())
	}
}

func TestGuideIDs(t *testing.T) {
	if got := BaselineGuide(ScaleMedium); got != "Baseline-M" {
		t.Errorf("BaselineGuide(M) = %q", got)
	}
	if got := CaplineGuide(ScaleLarge); got != "Capline-L" {
		t.Errorf("CaplineGuide(L) = %q", got)
	}
}
