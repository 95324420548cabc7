package observability

import (
	"context"
	"sync"
	"time"
)

// RecordingPipelineHooks counts pipeline events. It is safe for concurrent
// use and is mainly intended for tests.
type RecordingPipelineHooks struct {
	mu        sync.Mutex
	Started   int
	Completed int
	Cells     []string
	LastErr   error
}

func (h *RecordingPipelineHooks) OnGenerateStart(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Started++
}

func (h *RecordingPipelineHooks) OnCellComposed(_ context.Context, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Cells = append(h.Cells, id)
}

func (h *RecordingPipelineHooks) OnGenerateComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Completed++
	h.LastErr = err
}

// RecordingCacheHooks counts cache events.
type RecordingCacheHooks struct {
	mu     sync.Mutex
	Hits   int
	Misses int
	Sets   int
}

func (h *RecordingCacheHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Hits++
}

func (h *RecordingCacheHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Misses++
}

func (h *RecordingCacheHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Sets++
}
