// Package pipeline runs the load → generate → write sequence behind the
// generate command.
//
// A run reads the icon and template from disk, validates them, composes the
// symbol with package symbol, and writes the result. Nothing is written
// unless the whole grid was composed. The output is written through a
// temporary file in the destination directory and renamed into place, so a
// failed run never truncates the icon it was reading.
//
// Generated bytes are cached by content: the key covers the icon bytes, the
// template bytes and the geometry parameters, so a cache hit is guaranteed
// to be byte-identical to a fresh run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    IconPath:     "star.svg",
//	    TemplatePath: "template.svg",
//	    Params:       symbol.DefaultParams(),
//	})
package pipeline

import (
	"path/filepath"
	"time"

	"github.com/matzehuels/sfsymbol/pkg/errors"
	"github.com/matzehuels/sfsymbol/pkg/symbol"
)

// cacheKeyType labels symbol entries in cache hooks.
const cacheKeyType = "symbol"

// Options configures a pipeline run.
type Options struct {
	// IconPath is the source icon.
	IconPath string

	// TemplatePath is the guide template. It is only ever read.
	TemplatePath string

	// OutputPath is where the symbol is written. Empty means IconPath,
	// overwriting the icon in place.
	OutputPath string

	// Params is the geometry calibration.
	Params symbol.Params

	// CacheTTL is how long a generated symbol stays cached. Zero never expires.
	CacheTTL time.Duration

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool
}

// ValidateAndSetDefaults checks paths and parameters and fills OutputPath.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateSVGPath(o.IconPath); err != nil {
		return err
	}
	if err := errors.ValidatePath(o.TemplatePath); err != nil {
		return err
	}
	if o.OutputPath == "" {
		o.OutputPath = o.IconPath
	}
	if err := errors.ValidateSVGPath(o.OutputPath); err != nil {
		return err
	}
	return o.Params.Validate()
}

// InPlace reports whether the run overwrites its own input icon. Paths are
// compared after cleaning and resolving against the working directory, so
// "./star.svg" and "star.svg" name the same file.
func (o Options) InPlace() bool {
	return o.OutputPath == "" || samePath(o.OutputPath, o.IconPath)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Result describes a completed run.
type Result struct {
	// OutputPath is the file that was written.
	OutputPath string

	// Data is the serialized symbol.
	Data []byte

	// Report holds the computed geometry. Nil on a cache hit.
	Report *symbol.Report

	// CacheHit is true when composition was skipped.
	CacheHit bool

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline timing.
type Stats struct {
	LoadTime     time.Duration
	GenerateTime time.Duration
	WriteTime    time.Duration
}
