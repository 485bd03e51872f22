package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes read-only labels such as the ant heading.
	ParamTypeString ParamType = "string"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value exposed by the engine or scheduler.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed to the HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Adjust returns the value reached by moving current one step in direction,
// clamped to the control bounds.
func (c ParameterControl) Adjust(current, direction int) int {
	step := int(math.Round(c.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if c.HasMin {
		if lo := int(math.Round(c.Min)); target < lo {
			target = lo
		}
	}
	if c.HasMax {
		if hi := int(math.Round(c.Max)); target > hi {
			target = hi
		}
	}
	return target
}

// CanAdjust reports whether a step in direction would change current.
func (c ParameterControl) CanAdjust(current, direction int) bool {
	if direction == 0 {
		return false
	}
	return c.Adjust(current, direction) != current
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

// StringParam builds a read-only label entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeString,
		Value: value,
	}
}

// BoolParam builds a boolean entry.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
