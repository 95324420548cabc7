package symbol

import (
	"github.com/matzehuels/sfsymbol/pkg/errors"
	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
)

// Compose sets the transform of the placeholder with the given id and
// replaces its children with a deep copy of the icon's root content.
// Only the placeholder is modified; icon is left untouched.
func Compose(doc *svgdoc.Document, id string, t Transform, icon *svgdoc.Document) error {
	node, err := doc.ElementByID(id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNodeNotFound, err, "template has no %s placeholder", id)
	}
	node.SetAttr("transform", t.Matrix())
	node.ReplaceChildren(icon.Root())
	return nil
}
