package symbol

import (
	"testing"

	"github.com/matzehuels/sfsymbol/pkg/errors"
)

func TestCompose(t *testing.T) {
	doc := mustParse(t, templateSVG(100, 200, testGuides))
	icon := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 32 32">
  <path d="M4 4h24v24H4z"/>
  <circle cx="16" cy="16" r="4"/>
</svg>`)

	tr := Transform{Scale: 2, TranslateX: 10, TranslateY: 20}
	if err := Compose(doc, "Bold-S", tr, icon); err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	node, err := doc.ElementByID("Bold-S")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := node.Attr("transform"); got != tr.Matrix() {
		t.Errorf("transform = %q, want %q", got, tr.Matrix())
	}
	kids := node.Children()
	if len(kids) != 2 || kids[0].Tag() != "path" || kids[1].Tag() != "circle" {
		t.Errorf("placeholder children = %d, want path+circle", len(kids))
	}

	// Neighbouring placeholders are untouched.
	other, _ := doc.ElementByID("Heavy-S")
	if _, ok := other.Lookup("transform"); ok {
		t.Error("Compose() touched another placeholder")
	}

	// The icon keeps its content.
	if got := icon.Root().ChildCount(); got != 2 {
		t.Errorf("icon ChildCount() = %d, want 2", got)
	}
}

func TestComposeTwiceDoesNotAlias(t *testing.T) {
	doc := mustParse(t, templateSVG(100, 200, testGuides))
	icon := mustParse(t, testIcon)

	for _, id := range []string{"Thin-L", "Black-L"} {
		if err := Compose(doc, id, Transform{Scale: 1}, icon); err != nil {
			t.Fatalf("Compose(%s) error: %v", id, err)
		}
	}

	thin, _ := doc.ElementByID("Thin-L")
	thin.Children()[0].SetAttr("fill", "red")

	black, _ := doc.ElementByID("Black-L")
	if _, ok := black.Children()[0].Lookup("fill"); ok {
		t.Error("placeholders share icon nodes")
	}
}

func TestComposeMissingPlaceholder(t *testing.T) {
	doc := mustParse(t, templateSVG(100, 200, testGuides, "Regular-M"))
	icon := mustParse(t, testIcon)

	err := Compose(doc, "Regular-M", Transform{Scale: 1}, icon)
	if !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("Compose() error = %v, want %v", err, errors.ErrCodeNodeNotFound)
	}
}
