package ant

import "langton/internal/core"

// Parameters reports the viewport and the current automaton state.
func (e *Engine) Parameters() core.ParameterSnapshot {
	var view []core.Parameter
	if e.view.Shape == ShapeCentered {
		view = []core.Parameter{
			core.StringParam("shape", "Shape", e.view.Shape.String()),
			core.IntParam("zoom", "Zoom", e.view.HalfX),
		}
	} else {
		view = []core.Parameter{
			core.StringParam("shape", "Shape", e.view.Shape.String()),
			core.IntParam("w", "Width", e.view.Width),
			core.IntParam("h", "Height", e.view.Height),
		}
	}
	view = append(view, core.IntParam("cell", "Cell px", e.geom.CellSize))

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Viewport", Params: view},
		{
			Name: "Ant",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", e.steps),
				core.IntParam("black", "Black cells", e.grid.Len()),
				core.IntParam("ant_x", "X", e.ant.Pos.X),
				core.IntParam("ant_y", "Y", e.ant.Pos.Y),
				core.StringParam("heading", "Heading", e.ant.Heading.String()),
			},
		},
	}}
}

// ParameterControls lists the viewport values adjustable from the HUD.
func (e *Engine) ParameterControls() []core.ParameterControl {
	if e.view.Shape == ShapeCentered {
		return []core.ParameterControl{
			{Key: "zoom", Label: "Zoom", Type: core.ParamTypeInt, Step: 1, Min: MinZoom, Max: MaxZoom, HasMin: true, HasMax: true},
		}
	}
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: MaxExtent, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: MaxExtent, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a viewport change requested by the HUD. Values are
// clamped to the valid range. It reports false for unknown keys or keys that
// do not apply to this viewport shape.
func (e *Engine) SetIntParameter(key string, value int) bool {
	v := e.view
	switch key {
	case "zoom":
		if v.Shape != ShapeCentered {
			return false
		}
		v.HalfX, v.HalfY = value, value
	case "w":
		if v.Shape != ShapeRect {
			return false
		}
		v.Width = value
	case "h":
		if v.Shape != ShapeRect {
			return false
		}
		v.Height = value
	default:
		return false
	}
	return e.ConfigureViewport(v) == nil
}
