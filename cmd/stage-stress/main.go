package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stagehand/stage"
)

// nopRenderer satisfies stage.Renderer for headless runs.
type nopRenderer struct{}

func (nopRenderer) Render(*stage.Scene) {}

func (nopRenderer) Resize(int, int) {}

func (nopRenderer) Surface() any { return nil }

func (nopRenderer) Dispose() {}

func headlessFactory(stage.RenderMode, stage.Container) (stage.Renderer, error) {
	return nopRenderer{}, nil
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The number of body entities to create.")
	depth := flag.Int("depth", 4, "The nesting depth of the entity tree.")
	configPath := flag.String("config", "", "Optional YAML config; its physics section seeds the bodies.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting stage stress test...")

	cfg, err := stage.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Setup scene, input and loop
	scene := stage.NewScene()
	input := stage.NewInput()
	loop, err := stage.NewLoop(scene, input, headlessFactory, stage.Container{Width: 1, Height: 1}, stage.Mode2D)
	if err != nil {
		log.Fatalf("Failed to construct loop: %v", err)
	}

	// 2. Populate the scene with nested body entities
	log.Printf("Populating scene with %d entities (depth %d)...\n", *entityCount, *depth)
	populate(scene, *entityCount, *depth, cfg.Physics)
	log.Println("Population complete.")

	// 3. Run the frame loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Depth:          *depth,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running frame loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64
	loop.Start()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			loop.Tick()
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalFrames++
		}
	}
	loop.Stop()

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Frame loop finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// populate builds chains of parented entities so the update pass exercises
// tree recursion, not just a flat root list.
func populate(scene *stage.Scene, count, depth int, physics stage.PhysicsConfig) {
	if depth < 1 {
		depth = 1
	}

	var parent *stage.Entity
	for i := 0; i < count; i++ {
		e := stage.NewEntity(fmt.Sprintf("body-%d", i))

		t := stage.NewTransform2D()
		t.Position = stage.Vec2{
			X: rand.Float32() * 1000,
			Y: rand.Float32() * 1000,
		}
		e.AddComponent(t)

		body := stage.NewBody()
		body.Gravity = physics.Gravity
		body.Velocity = stage.Vec2{
			X: rand.Float32()*20 - 10,
			Y: rand.Float32()*20 - 10,
		}
		body.Friction = physics.Friction + rand.Float32()*0.1
		e.AddComponent(body)

		if parent == nil || i%depth == 0 {
			scene.Attach(e)
			parent = e
		} else {
			parent.AddChild(e)
			parent = e
		}
	}
}
