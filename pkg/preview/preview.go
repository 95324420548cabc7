// Package preview rasterises SVG documents to PNG so a generated symbol (or
// a source icon) can be eyeballed without a vector editor.
//
// Rendering uses github.com/srwiley/oksvg, which supports the path and basic
// shape subset of SVG used by icons. Elements it does not understand, such
// as template text labels, are skipped.
package preview

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/sfsymbol/pkg/errors"
)

// DefaultSize is the default length of the longer output side in pixels.
const DefaultSize = 512

// Options configures rasterisation.
type Options struct {
	// Size is the length of the longer output side. Zero means DefaultSize.
	Size int

	// Background fills the canvas behind the drawing. Nil means white.
	Background color.Color
}

// Render rasterises svg, scaled to fit opts.Size while keeping its aspect
// ratio.
func Render(svg []byte, opts Options) (image.Image, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode svg for preview")
	}
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "svg has no drawable size")
	}

	scale := float64(size) / math.Max(w, h)
	outW := max(1, int(math.Round(w*scale)))
	outH := max(1, int(math.Round(h*scale)))
	icon.SetTarget(0, 0, float64(outW), float64(outH))

	drawing := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scanner := rasterx.NewScannerGV(outW, outH, drawing, drawing.Bounds())
	raster := rasterx.NewDasher(outW, outH, scanner)
	icon.Draw(raster, 1.0)

	canvas := imaging.New(outW, outH, bg)
	return imaging.Overlay(canvas, drawing, image.Pt(0, 0), 1.0), nil
}

// WritePNG rasterises svg and writes it to w as PNG.
func WritePNG(w io.Writer, svg []byte, opts Options) error {
	img, err := Render(svg, opts)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}
