package symbol

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

func TestBaseScale(t *testing.T) {
	tests := []struct {
		name              string
		baseline, capline float64
		want              float64
	}{
		{"capline above", 10, 0, 0.53125},
		{"capline below", 0, 10, 0.53125},
		{"template", 800, 500, 15.9375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseScale(tt.baseline, tt.capline, 32, 1.7)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("BaseScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFrame(t *testing.T) {
	p := DefaultParams()
	f := NewFrame(Margins{Left: 100, Right: 200}, ScaleGuides{Baseline: 800, Capline: 500}, p)

	want := Frame{
		BaseScale:        15.9375,
		HorizontalCenter: 150,
		ScaledWidth:      510,
		ScaledHeight:     510,
		Original:         Margins{Left: 100, Right: 200},
		Adjusted:         Margins{Left: -109.5, Right: 409.5},
	}
	if diff := cmp.Diff(want, f, cmpopts.EquateApprox(0, epsilon)); diff != "" {
		t.Errorf("NewFrame() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarginSymmetry(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		margins Margins
		ref     ScaleGuides
	}{
		{Margins{Left: 100, Right: 200}, ScaleGuides{Baseline: 800, Capline: 500}},
		{Margins{Left: -37.25, Right: 912.5}, ScaleGuides{Baseline: 12, Capline: 3}},
		{Margins{Left: 1783.2, Right: 1791.9}, ScaleGuides{Baseline: 1271.1, Capline: 1138.4}},
		{Margins{Left: 0, Right: 0}, ScaleGuides{Baseline: 1, Capline: 0}},
	}

	for _, c := range cases {
		f := NewFrame(c.margins, c.ref, p)
		if got := f.Adjusted.Center(); math.Abs(got-f.HorizontalCenter) > epsilon {
			t.Errorf("adjusted center = %v, want %v", got, f.HorizontalCenter)
		}
		if f.Adjusted.Right-f.Adjusted.Left <= f.ScaledWidth {
			t.Errorf("adjusted margins %+v do not contain the scaled icon (%v)", f.Adjusted, f.ScaledWidth)
		}
	}
}

func TestAdjustMargins(t *testing.T) {
	doc := mustParse(t, templateSVG(100, 200, testGuides))

	f, err := ReadFrame(doc, DefaultParams())
	if err != nil {
		t.Fatalf("ReadFrame() error: %v", err)
	}
	if err := AdjustMargins(doc, f); err != nil {
		t.Fatalf("AdjustMargins() error: %v", err)
	}

	left, err := GuideValue(doc, AxisX, LeftMarginGuide)
	if err != nil {
		t.Fatalf("left margin unreadable after adjustment: %v", err)
	}
	right, err := GuideValue(doc, AxisX, RightMarginGuide)
	if err != nil {
		t.Fatalf("right margin unreadable after adjustment: %v", err)
	}
	if left != -109.5 || right != 409.5 {
		t.Errorf("margins = (%v, %v), want (-109.5, 409.5)", left, right)
	}

	// Baseline and capline guides stay put.
	guides, err := ReadGuides(doc)
	if err != nil {
		t.Fatalf("ReadGuides() error: %v", err)
	}
	if diff := cmp.Diff(testGuides, guides); diff != "" {
		t.Errorf("scale guides changed (-want +got):\n%s", diff)
	}
}

func TestAdjustMarginsFormatting(t *testing.T) {
	doc := mustParse(t, templateSVG(100, 200, testGuides))
	f := Frame{Adjusted: Margins{Left: -110, Right: 369.26349999999996}}
	if err := AdjustMargins(doc, f); err != nil {
		t.Fatalf("AdjustMargins() error: %v", err)
	}

	tests := []struct {
		id   string
		want string
	}{
		{LeftMarginGuide, "-110.0"},
		{RightMarginGuide, "369.26349999999996"},
	}
	for _, tt := range tests {
		node, err := doc.ElementByID(tt.id)
		if err != nil {
			t.Fatal(err)
		}
		for _, attr := range []string{"x1", "x2"} {
			if got, _ := node.Attr(attr); got != tt.want {
				t.Errorf("%s %s = %q, want %q", tt.id, attr, got, tt.want)
			}
		}
	}
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100.0"},
		{0, "0.0"},
		{-109.5, "-109.5"},
		{409.5, "409.5"},
		{1391.3, "1391.3"},
	}
	for _, tt := range tests {
		if got := formatCoordinate(tt.in); got != tt.want {
			t.Errorf("formatCoordinate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadFrameMissingGuide(t *testing.T) {
	doc := mustParse(t, `<svg><line id="left-margin" x1="1" x2="1"/></svg>`)
	if _, err := ReadFrame(doc, DefaultParams()); err == nil {
		t.Error("ReadFrame() should fail without a right margin")
	}
}
