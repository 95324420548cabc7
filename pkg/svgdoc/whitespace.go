package svgdoc

import (
	"strings"

	"github.com/beevik/etree"
)

// holdsText reports whether el carries character data that must be kept as
// written: any non-blank text or CDATA, or blank text with no element
// siblings. Such subtrees are never stripped or re-indented.
func holdsText(el *etree.Element) bool {
	blank, other := false, false
	for _, tok := range el.Child {
		cd, ok := tok.(*etree.CharData)
		if !ok {
			other = true
			continue
		}
		if cd.IsCData() || strings.TrimSpace(cd.Data) != "" {
			return true
		}
		blank = true
	}
	return blank && !other
}

// detachChildren removes and returns every child token of el.
func detachChildren(el *etree.Element) []etree.Token {
	kids := make([]etree.Token, 0, len(el.Child))
	for len(el.Child) > 0 {
		kids = append(kids, el.RemoveChildAt(0))
	}
	return kids
}

// stripBlanks drops whitespace-only text between elements throughout the
// subtree rooted at el. Mixed-content elements are left untouched.
func stripBlanks(el *etree.Element) {
	if holdsText(el) {
		return
	}
	for _, tok := range detachChildren(el) {
		if _, ok := tok.(*etree.CharData); ok {
			continue
		}
		el.AddChild(tok)
		if child, ok := tok.(*etree.Element); ok {
			stripBlanks(child)
		}
	}
}

// indentTree puts every top-level token of the document on its own line and
// indents the root element by unit spaces per level.
func indentTree(tree *etree.Document, unit int) {
	doc := &tree.Element
	stripBlanks(doc)
	for i, tok := range detachChildren(doc) {
		if i > 0 {
			doc.AddChild(etree.NewText("\n"))
		}
		doc.AddChild(tok)
		if el, ok := tok.(*etree.Element); ok {
			indentElement(el, 0, unit)
		}
	}
	doc.AddChild(etree.NewText("\n"))
}

// indentElement indents the children of a stripped element at depth.
func indentElement(el *etree.Element, depth, unit int) {
	if len(el.Child) == 0 || holdsText(el) {
		return
	}
	inner := "\n" + strings.Repeat(" ", (depth+1)*unit)
	for _, tok := range detachChildren(el) {
		el.AddChild(etree.NewText(inner))
		el.AddChild(tok)
		if child, ok := tok.(*etree.Element); ok {
			indentElement(child, depth+1, unit)
		}
	}
	el.AddChild(etree.NewText("\n" + strings.Repeat(" ", depth*unit)))
}
