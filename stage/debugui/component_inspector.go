package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stagehand/stage"
)

// componentInspector edits the selected entity's components through
// reflection over their exported fields.
type componentInspector struct{}

func (ci *componentInspector) render(selected *stage.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == nil {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", selected.Name()))
	active := selected.Active()
	if imgui.Checkbox("Active", &active) {
		selected.SetActive(active)
	}
	imgui.Separator()

	for _, component := range selected.Components() {
		if imgui.TreeNodeStr(component.Type().String()) {
			ci.renderComponent(component)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *componentInspector) renderComponent(component stage.Component) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", component))
		return
	}

	fields := globalReflectionCache.GetFields(val.Type())
	for _, field := range fields {
		ci.renderField(field.Name, val.Field(field.Index), field)
	}
}

func (ci *componentInspector) renderField(name string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.IsPointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(fmt.Sprintf("%s##field", name), &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		imgui.Text(fmt.Sprintf("%s: %q", name, val.String()))

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			nested := globalReflectionCache.GetFields(val.Type())
			for _, f := range nested {
				ci.renderField(f.Name, val.Field(f.Index), f)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d elements]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: {%d entries}", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
