package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stagehand/stage"
)

// frameStats shows the loop's frame rate, a frame time graph and the
// per-phase timing breakdown.
type frameStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastTotal     int64
}

func newFrameStats(historyFrames int) frameStats {
	return frameStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (fs *frameStats) render(scene *stage.Scene, loop *stage.Loop) {
	if !imgui.BeginV("Frame Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := loop.Stats()

	if len(stats.Phases) > 0 && stats.FrameCount != fs.lastTotal {
		fs.lastTotal = stats.FrameCount
		var total float32
		for _, phase := range stats.Phases {
			total += float32(phase.LastDuration.Microseconds()) / 1000.0
		}
		fs.frameHistory[fs.frameIndex] = total
		fs.frameIndex = (fs.frameIndex + 1) % fs.historyFrames
	}

	imgui.Text(fmt.Sprintf("FPS: %d", stats.FPS))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
	imgui.Text(fmt.Sprintf("Mode: %s", loop.Mode()))
	imgui.Text(fmt.Sprintf("Entities: %d", countEntities(scene)))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &fs.frameHistory[0], int32(len(fs.frameHistory)))

	if imgui.TreeNodeStr("Phase Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func countEntities(scene *stage.Scene) int {
	count := 0
	var walk func(e *stage.Entity)
	walk = func(e *stage.Entity) {
		count++
		for _, child := range e.Children() {
			walk(child)
		}
	}
	for _, root := range scene.Roots() {
		walk(root)
	}
	return count
}
