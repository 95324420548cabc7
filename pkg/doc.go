// Package pkg provides the libraries behind the sfsymbol generator.
//
// # Overview
//
// sfsymbol takes a square SVG icon and a symbol template exported from Apple's
// SF Symbols app and places the icon into all 27 weight/scale placeholders of
// the template. Each copy is scaled and positioned against the template's
// guide lines, and the template's margin guides are re-centred around the
// icon.
//
// # Architecture
//
// The data flow of a generate run:
//
//	icon.svg + template.svg
//	         ↓
//	    [svgdoc] package (parse into an element tree)
//	         ↓
//	    [symbol] package (read guides, compute the grid, compose placeholders)
//	         ↓
//	    [pipeline] package (cache, atomic write)
//	         ↓
//	    symbol SVG (and optionally a PNG via [preview])
//
// # Quick Start
//
//	template, _ := svgdoc.ReadFile("template.svg")
//	icon, _ := svgdoc.ReadFile("star.svg")
//
//	out, report, err := symbol.Generate(template, icon, symbol.Options{
//	    Params: symbol.DefaultParams(),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Frame.BaseScale)
//	data, _ := out.Bytes()
//
// # Main Packages
//
// [symbol] - Guide reading, icon validation, margin adjustment, the
// transform grid and placeholder composition.
//
// [svgdoc] - Element tree access for SVG documents: lookup by id,
// attributes, deep copies and serialization.
//
// [pipeline] - Load, generate and write with content-addressed caching. Used
// by the CLI.
//
// [config] - TOML configuration for the template path, icon size and
// calibration constants.
//
// [cache] - File and null caches for generated symbols.
//
// [preview] - SVG to PNG rasterisation.
//
// [observability] - Optional hooks for generation and cache events.
//
// [errors] - Coded errors shared by all packages.
//
// [symbol]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/symbol
// [svgdoc]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/svgdoc
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/cache
// [preview]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/preview
// [observability]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sfsymbol/pkg/errors
package pkg
