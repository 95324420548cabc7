package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sfsymbol/pkg/cache"
	"github.com/matzehuels/sfsymbol/pkg/observability"
	"github.com/matzehuels/sfsymbol/pkg/svgdoc"
	"github.com/matzehuels/sfsymbol/pkg/symbol"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state; each Execute call works on its own
// documents.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil logger
// falls back to log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute loads the icon and template, generates the symbol and writes it to
// opts.OutputPath. Any failure aborts before the output is touched.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{OutputPath: opts.OutputPath}

	loadStart := time.Now()
	iconData, err := readInput(opts.IconPath)
	if err != nil {
		return nil, err
	}
	templateData, err := readInput(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)

	key := cache.SymbolKey(iconData, templateData, opts.Params)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("cache hit", "icon", opts.IconPath)
			result.Data = data
			result.CacheHit = true
			if err := r.write(result, data); err != nil {
				return nil, err
			}
			return result, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	observability.Pipeline().OnGenerateStart(ctx, opts.IconPath)
	genStart := time.Now()
	data, report, err := r.generate(ctx, opts, iconData, templateData)
	result.Stats.GenerateTime = time.Since(genStart)
	observability.Pipeline().OnGenerateComplete(ctx, opts.IconPath, len(report.Cells), result.Stats.GenerateTime, err)
	if err != nil {
		return nil, err
	}
	result.Data = data
	result.Report = &report

	r.Logger.Info("generated symbol",
		"cells", len(report.Cells),
		"base_scale", report.Frame.BaseScale,
		"duration", result.Stats.GenerateTime)

	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}

	if err := r.write(result, data); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) generate(ctx context.Context, opts Options, iconData, templateData []byte) ([]byte, symbol.Report, error) {
	icon, err := svgdoc.ParseNamed(opts.IconPath, iconData)
	if err != nil {
		return nil, symbol.Report{}, err
	}
	template, err := svgdoc.ParseNamed(opts.TemplatePath, templateData)
	if err != nil {
		return nil, symbol.Report{}, err
	}

	out, report, err := symbol.Generate(template, icon, symbol.Options{
		Params:   opts.Params,
		IconName: opts.IconPath,
		OnCell: func(c symbol.Cell) {
			r.Logger.Debug("composed",
				"id", c.PlaceholderID(),
				"symbol_scale", c.SymbolScale,
				"transform", c.Transform.Matrix())
			observability.Pipeline().OnCellComposed(ctx, c.PlaceholderID())
		},
	})
	if err != nil {
		return nil, symbol.Report{}, err
	}

	r.Logger.Debug("margins adjusted",
		"left", report.Frame.Adjusted.Left,
		"right", report.Frame.Adjusted.Right,
		"center", report.Frame.HorizontalCenter)

	data, err := out.Bytes()
	if err != nil {
		return nil, symbol.Report{}, err
	}
	return data, report, nil
}

func (r *Runner) write(result *Result, data []byte) error {
	start := time.Now()
	if err := WriteFile(result.OutputPath, data); err != nil {
		return err
	}
	result.Stats.WriteTime = time.Since(start)
	r.Logger.Debug("wrote symbol", "path", result.OutputPath, "bytes", len(data))
	return nil
}
