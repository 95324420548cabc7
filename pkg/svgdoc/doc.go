// Package svgdoc is a small typed accessor layer over an in-memory SVG
// document tree.
//
// It wraps github.com/beevik/etree and exposes only what the symbol generator
// needs: parsing, lookup by id, attribute reads and writes, deep-copying an
// element's children into another element, and serialization.
//
// Whitespace-only text between elements is discarded at parse time and the
// document is re-indented on write, so a parsed-then-written document is
// stable under repeated round trips. Elements that hold text, such as
// <text> with nested <tspan> runs, are written back exactly as parsed.
//
// A [Document] is not safe for concurrent mutation.
package svgdoc
