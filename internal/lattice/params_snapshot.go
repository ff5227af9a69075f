package lattice

import (
	"strconv"

	"rnalattice/internal/core"
)

// Parameters returns a snapshot of the board's tunables for HUD display.
func (b *Board) Parameters() core.ParameterSnapshot {
	p := b.Params
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Moves",
				Params: []core.Parameter{
					floatParam("split", "Split probability", p.SplitProb),
					floatParam("bond", "Bond probability", p.BondProb),
				},
			},
			{
				Name: "Energy",
				Params: []core.Parameter{
					floatParam("stack", "Stacking energy", p.StackEnergy),
					floatParam("au", "A-U energy", p.AUEnergy),
					floatParam("gc", "G-C energy", p.GCEnergy),
					floatParam("gu", "G-U energy", p.GUEnergy),
					floatParam("temp", "Temperature", p.Temp),
				},
			},
		},
	}
}

// ParameterControls exposes the HUD-adjustable controls for this board.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "split", Label: "Split probability", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "bond", Label: "Bond probability", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "stack", Label: "Stacking energy", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "au", Label: "A-U energy", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "gc", Label: "G-C energy", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "gu", Label: "G-U energy", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "temp", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.01, HasMin: true},
	}
}

// SetFloatParameter updates a tunable by key, returning false for an
// unknown key, a split or bond probability outside [0, 1], or a
// non-positive temperature.
func (b *Board) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "split":
		if value < 0 || value > 1 {
			return false
		}
		b.Params.SplitProb = value
	case "bond":
		if value < 0 || value > 1 {
			return false
		}
		b.Params.BondProb = value
	case "stack":
		b.Params.StackEnergy = value
	case "au":
		b.Params.AUEnergy = value
	case "gc":
		b.Params.GCEnergy = value
	case "gu":
		b.Params.GUEnergy = value
	case "temp":
		if value <= 0 {
			return false
		}
		b.Params.Temp = value
	default:
		return false
	}
	return true
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
