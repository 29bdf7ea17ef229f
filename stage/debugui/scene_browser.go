package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stagehand/stage"
)

// sceneBrowser shows the entity forest as a tree and tracks the selection
// for the component inspector.
type sceneBrowser struct {
	selected   *stage.Entity
	filterText string
}

func (sb *sceneBrowser) render(scene *stage.Scene) {
	if !imgui.BeginV("Scene Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}
	imgui.Separator()

	for i, root := range scene.Roots() {
		sb.renderNode(root, fmt.Sprintf("%d", i))
	}

	imgui.End()
}

func (sb *sceneBrowser) renderNode(e *stage.Entity, idPath string) {
	if sb.filterText != "" && !subtreeMatches(e, sb.filterText) {
		return
	}

	label := e.Name()
	if label == "" {
		label = "(unnamed)"
	}
	if !e.Active() {
		label += " [inactive]"
	}
	if e == sb.selected {
		label += " *"
	}

	if imgui.TreeNodeStr(fmt.Sprintf("%s##%s", label, idPath)) {
		imgui.SameLine()
		if imgui.Button(fmt.Sprintf("inspect##%s", idPath)) {
			sb.selected = e
		}
		for i, child := range e.Children() {
			sb.renderNode(child, fmt.Sprintf("%s/%d", idPath, i))
		}
		imgui.TreePop()
	}
}

func subtreeMatches(e *stage.Entity, filter string) bool {
	if containsFold(e.Name(), filter) {
		return true
	}
	for _, child := range e.Children() {
		if subtreeMatches(child, filter) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
