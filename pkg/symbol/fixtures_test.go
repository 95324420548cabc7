package symbol

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
)

// testGuides are the baseline/capline pairs used by the test template.
var testGuides = map[FontScale]ScaleGuides{
	ScaleSmall:  {Baseline: 790, Capline: 540},
	ScaleMedium: {Baseline: 800, Capline: 500},
	ScaleLarge:  {Baseline: 820, Capline: 460},
}

const testIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 32 32">
  <path d="M4 4h24v24H4z"/>
</svg>`

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// templateSVG builds a minimal guide template. Placeholders listed in skip
// are left out.
func templateSVG(left, right float64, guides map[FontScale]ScaleGuides, skip ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="3300" height="2200">` + "\n")
	b.WriteString(`<g id="Guides">` + "\n")
	fmt.Fprintf(&b, `<line id="left-margin" x1="%s" x2="%s" y1="0" y2="100"/>`+"\n", ftoa(left), ftoa(left))
	fmt.Fprintf(&b, `<line id="right-margin" x1="%s" x2="%s" y1="0" y2="100"/>`+"\n", ftoa(right), ftoa(right))
	for _, s := range Scales {
		g := guides[s]
		fmt.Fprintf(&b, `<line id="Baseline-%s" x1="0" x2="3300" y1="%s" y2="%s"/>`+"\n", s, ftoa(g.Baseline), ftoa(g.Baseline))
		fmt.Fprintf(&b, `<line id="Capline-%s" x1="0" x2="3300" y1="%s" y2="%s"/>`+"\n", s, ftoa(g.Capline), ftoa(g.Capline))
	}
	b.WriteString("</g>\n<g id=\"Symbols\">\n")
	for _, s := range Scales {
		for _, w := range Weights {
			id := PlaceholderID(w, s)
			if contains(skip, id) {
				continue
			}
			fmt.Fprintf(&b, `<g id="%s"><path d="M0 0"/></g>`+"\n", id)
		}
	}
	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func mustParse(t *testing.T, s string) *svgdoc.Document {
	t.Helper()
	doc, err := svgdoc.ParseBytes([]byte(s))
	if err != nil {
		t.Fatalf("ParseBytes() error: %v", err)
	}
	return doc
}

func parseMatrix(t *testing.T, s string) Transform {
	t.Helper()
	var a, b, c, d, e, f float64
	if _, err := fmt.Sscanf(s, "matrix(%f %f %f %f %f %f)", &a, &b, &c, &d, &e, &f); err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	if a != d || b != 0 || c != 0 {
		t.Fatalf("matrix %q is not a uniform scale", s)
	}
	return Transform{Scale: a, TranslateX: e, TranslateY: f}
}
