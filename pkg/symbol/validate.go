package symbol

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/sfsymbol/pkg/errors"
	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
)

// ValidateIcon checks that the icon's root declares exactly width, height and
// a "0 0 width height" viewBox. Percentages, units and other sizes are
// rejected rather than converted. name identifies the icon in the error.
func ValidateIcon(icon *svgdoc.Document, name string, width, height int) error {
	root := icon.Root()
	w, _ := root.Lookup("width")
	h, _ := root.Lookup("height")
	vb, _ := root.Lookup("viewBox")
	if w != strconv.Itoa(width) || h != strconv.Itoa(height) || vb != fmt.Sprintf("0 0 %d %d", width, height) {
		return errors.New(errors.ErrCodeSizeMismatch, "expected icon size of %s to be (%d, %d)", name, width, height)
	}
	return nil
}
