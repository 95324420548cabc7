// Package symbol turns a flat 32×32 icon into a multi-weight, multi-scale
// symbol by embedding it into a guide template.
//
// The template carries calibration guides (vertical margin lines and a
// baseline/capline pair per [FontScale]) and one placeholder group per
// (weight, scale) cell, identified as "{weight}-{scale}", e.g. "Regular-M".
//
// Generation proceeds in four steps:
//
//  1. [ValidateIcon] rejects icons whose canvas is not exactly the expected size.
//  2. [ReadFrame] reads the margin and reference-scale guides and derives the
//     base scale, the shared horizontal center and re-centred margins.
//  3. [Grid] folds the per-weight symbol-scale accumulator across every
//     (scale, weight) pair and produces one [Transform] per cell.
//  4. [Compose] writes each transform to its placeholder and fills the
//     placeholder with a deep copy of the icon content.
//
// [Generate] runs all four against a copy of the template, so neither input
// document is modified.
//
// # Tuning constants
//
// The symbol-scale seed, per-weight additions and the pitch between weight
// columns are visual calibration values. [DefaultParams] carries them
// verbatim; they are not derived from anything.
package symbol
