package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, "star.svg")
	p.OnCellComposed(ctx, "Regular-M")
	p.OnGenerateComplete(ctx, "star.svg", 27, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "symbol")
	c.OnCacheMiss(ctx, "symbol")
	c.OnCacheSet(ctx, "symbol", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &RecordingPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &RecordingCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &RecordingPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the previous hooks")
	}
}

func TestRecordingHooks(t *testing.T) {
	ctx := context.Background()

	p := &RecordingPipelineHooks{}
	p.OnGenerateStart(ctx, "a.svg")
	p.OnCellComposed(ctx, "Thin-S")
	p.OnCellComposed(ctx, "Bold-L")
	p.OnGenerateComplete(ctx, "a.svg", 2, time.Millisecond, nil)

	if p.Started != 1 || p.Completed != 1 {
		t.Errorf("Started/Completed = %d/%d, want 1/1", p.Started, p.Completed)
	}
	if len(p.Cells) != 2 || p.Cells[1] != "Bold-L" {
		t.Errorf("Cells = %v", p.Cells)
	}

	c := &RecordingCacheHooks{}
	c.OnCacheMiss(ctx, "symbol")
	c.OnCacheSet(ctx, "symbol", 10)
	c.OnCacheHit(ctx, "symbol")
	if c.Hits != 1 || c.Misses != 1 || c.Sets != 1 {
		t.Errorf("cache counts = %+v", c)
	}
}
