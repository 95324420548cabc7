package svgdoc

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/beevik/etree"

	"github.com/matzehuels/sfsymbol/pkg/errors"
)

// writeIndent is the number of spaces per nesting level in serialized output.
const writeIndent = 2

// Document is an owned, mutable SVG document.
type Document struct {
	tree *etree.Document
}

// Element is a handle to a single element inside a [Document].
// Mutations through an Element are visible in the owning Document.
type Element struct {
	el *etree.Element
}

// Parse reads an XML document from r.
func Parse(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse svg")
	}
	return newDocument(tree, "svg")
}

// ParseBytes parses an XML document held in memory.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// ReadFile parses the XML document stored at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return ParseNamed(path, data)
}

// ParseNamed parses data, naming the document in errors.
func ParseNamed(name string, data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", name)
	}
	return newDocument(tree, name)
}

func newDocument(tree *etree.Document, name string) (*Document, error) {
	if tree.Root() == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s has no root element", name)
	}
	stripBlanks(&tree.Element)
	return &Document{tree: tree}, nil
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return &Element{el: d.tree.Root()}
}

// ElementByID returns the first element, in document order, whose id
// attribute equals id. It fails with NODE_NOT_FOUND when there is none.
func (d *Document) ElementByID(id string) (*Element, error) {
	if id == "" {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "empty element id")
	}
	stack := []*etree.Element{d.tree.Root()}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if el.SelectAttrValue("id", "") == id {
			return &Element{el: el}, nil
		}
		children := el.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil, errors.New(errors.ErrCodeNodeNotFound, "no element with id %q", id)
}

// Copy returns a deep copy of the document.
func (d *Document) Copy() *Document {
	return &Document{tree: d.tree.Copy()}
}

// WriteTo serializes the document to w with two-space indentation.
// Elements holding text keep their content byte for byte. The receiver is
// left unchanged.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out := d.tree.Copy()
	indentTree(out, writeIndent)
	return out.WriteTo(w)
}

// Bytes serializes the document into a byte slice.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize svg")
	}
	return buf.Bytes(), nil
}

// Tag returns the element's local name.
func (e *Element) Tag() string {
	return e.el.Tag
}

// ID returns the element's id attribute, or "" when absent.
func (e *Element) ID() string {
	return e.el.SelectAttrValue("id", "")
}

// Lookup returns the value of the named attribute and whether it is present.
func (e *Element) Lookup(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Attr returns the value of the named attribute. A missing attribute is an
// INVALID_DOCUMENT error naming the element.
func (e *Element) Attr(name string) (string, error) {
	v, ok := e.Lookup(name)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidDocument, "<%s id=%q> has no %s attribute", e.el.Tag, e.ID(), name)
	}
	return v, nil
}

// SetAttr creates or replaces the named attribute.
func (e *Element) SetAttr(name, value string) {
	e.el.CreateAttr(name, value)
}

// ChildCount returns the number of direct child elements.
func (e *Element) ChildCount() int {
	return len(e.el.ChildElements())
}

// Children returns the direct child elements.
func (e *Element) Children() []*Element {
	els := e.el.ChildElements()
	out := make([]*Element, len(els))
	for i, el := range els {
		out[i] = &Element{el: el}
	}
	return out
}

// ReplaceChildren removes every child token of e and appends a deep copy of
// src's children. src is never modified.
func (e *Element) ReplaceChildren(src *Element) {
	for len(e.el.Child) > 0 {
		e.el.RemoveChildAt(len(e.el.Child) - 1)
	}
	dup := src.el.Copy()
	for _, tok := range slices.Clone(dup.Child) {
		e.el.AddChild(tok)
	}
}
