package stage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// PhaseStats provides execution statistics for a single loop phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// LoopStats provides statistics about frame execution.
type LoopStats struct {
	FrameCount int64
	FPS        int
	Phases     []PhaseStats
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhaseStats(name string) *phaseStatsInternal {
	return &phaseStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *phaseStatsInternal) record(d time.Duration) {
	p.executionCount++
	p.lastDuration = d
	p.totalDuration += d
	if d < p.minDuration {
		p.minDuration = d
	}
	if d > p.maxDuration {
		p.maxDuration = d
	}
}

// Loop drives one update/render iteration per host frame. It owns the
// Stopped/Running state, the elapsed-time measurement, the per-second frame
// counter and the backend-switch lifecycle.
//
// Per iteration: measure elapsed time, update the scene forest, clear the
// input machine's edge sets, render through the active backend, maintain the
// frame counter, and report whether the host should re-arm.
type Loop struct {
	scene     *Scene
	input     *Input
	factory   RendererFactory
	container Container

	mode     RenderMode
	renderer Renderer

	running bool
	last    time.Time

	frames     int
	fps        int
	secondMark time.Time

	frameCount int64
	phaseStats []*phaseStatsInternal

	logger *zap.Logger
}

// NewLoop creates a stopped loop and constructs the initial backend for the
// given mode. A backend construction failure aborts startup.
func NewLoop(scene *Scene, input *Input, factory RendererFactory, container Container, mode RenderMode) (*Loop, error) {
	renderer, err := factory(mode, container)
	if err != nil {
		return nil, fmt.Errorf("constructing %s backend: %w", mode, err)
	}

	input.Resize(container.Width, container.Height)

	return &Loop{
		scene:     scene,
		input:     input,
		factory:   factory,
		container: container,
		mode:      mode,
		renderer:  renderer,
		phaseStats: []*phaseStatsInternal{
			newPhaseStats("update"),
			newPhaseStats("render"),
		},
		logger: zap.NewNop(),
	}, nil
}

// SetLogger installs a structured logger for frame diagnostics. The default
// discards everything.
func (l *Loop) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger
}

// Start transitions Stopped to Running. Idempotent if already running.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	now := time.Now()
	l.last = now
	l.secondMark = now
	l.frames = 0
}

// Stop halts future re-arming. An iteration already in flight still
// completes.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.logger.Info("loop stopped", zap.Int64("frames", l.frameCount))
}

func (l *Loop) Running() bool { return l.running }

// Tick runs one iteration and reports whether the host should re-arm the
// loop for the next frame. A stopped loop ticks as a no-op.
func (l *Loop) Tick() bool {
	if !l.running {
		return false
	}

	now := time.Now()
	dt := now.Sub(l.last).Seconds()
	l.last = now

	start := time.Now()
	l.scene.Update(dt)
	l.input.Flush()
	l.phaseStats[0].record(time.Since(start))

	if l.renderer != nil {
		start = time.Now()
		l.renderer.Render(l.scene)
		l.phaseStats[1].record(time.Since(start))
	}

	l.frameCount++
	l.frames++
	if now.Sub(l.secondMark) >= time.Second {
		l.fps = l.frames
		l.frames = 0
		l.secondMark = now
		l.logger.Debug("frame rate", zap.Int("fps", l.fps))
	}

	return l.running
}

// Run ticks the loop at the given interval until the context is cancelled.
// Useful for headless tooling and tests, where no host frame source exists.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	l.Start()
	defer l.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !l.Tick() {
				return
			}
		}
	}
}

// FPS returns the iteration count of the last full wall-clock second.
func (l *Loop) FPS() int { return l.fps }

// Mode returns the active render mode.
func (l *Loop) Mode() RenderMode { return l.mode }

// Renderer returns the active backend.
func (l *Loop) Renderer() Renderer { return l.renderer }

// SwitchMode swaps the renderer backend. A no-op when the requested mode is
// already active. Otherwise the active backend's surface is discarded, the
// other backend is constructed against the same container, and the input
// machine is rebound to the new surface geometry. Scene contents are
// untouched.
func (l *Loop) SwitchMode(mode RenderMode) error {
	if mode == l.mode {
		return nil
	}

	if l.renderer != nil {
		l.renderer.Dispose()
	}
	renderer, err := l.factory(mode, l.container)
	if err != nil {
		l.renderer = nil
		l.logger.Error("backend construction failed", zap.Stringer("mode", mode), zap.Error(err))
		return fmt.Errorf("switching to %s backend: %w", mode, err)
	}

	l.renderer = renderer
	l.mode = mode
	l.input.Resize(l.container.Width, l.container.Height)
	l.logger.Info("render mode switched", zap.Stringer("mode", mode))
	return nil
}

// Resize propagates a new container size to the active backend and the
// input machine.
func (l *Loop) Resize(width, height int) {
	l.container.Width = width
	l.container.Height = height
	if l.renderer != nil {
		l.renderer.Resize(width, height)
	}
	l.input.Resize(width, height)
}

// Stats returns statistics about frame execution.
func (l *Loop) Stats() *LoopStats {
	stats := &LoopStats{
		FrameCount: l.frameCount,
		FPS:        l.fps,
		Phases:     make([]PhaseStats, len(l.phaseStats)),
	}

	for i, internal := range l.phaseStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Phases[i] = PhaseStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
