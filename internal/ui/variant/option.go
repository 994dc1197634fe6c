package variant

import (
	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// OptionInputs drives the reduced variant used by the selectable element:
// color role, disabled and checked state only.
type OptionInputs struct {
	Color    ColorRole
	Disabled bool
	Checked  bool
}

// OptionColors lists the color roles a selectable element accepts.
func OptionColors() []ColorRole {
	return []ColorRole{ColorDefault, ColorPrimary, ColorDanger}
}

// Validate rejects color roles the option variant has no styling for.
func (in OptionInputs) Validate() error {
	switch in.Color {
	case ColorUnset, ColorDefault, ColorPrimary, ColorDanger:
		return nil
	}
	return kerrors.NewConfigError("color", in.Color.String(), []string{"default", "primary", "danger"})
}

const (
	indicatorGray  = "#d1d5db"
	indicatorWash  = "#f2f2f2"
	indicatorBlack = "#000000"
)

var optionBase = Set{
	D(PropDisplay, "inline"),
	D(PropAlign, "center"),
	D(PropCursor, "pointer"),
	D(PropUserSelect, None),
	D(PropIndicatorBorder, indicatorGray),
	D(PropIndicatorFill, Transparent),
	D(PropIndicatorDot, onSolid),
}

var optionDisabled = Set{
	D(PropCursor, "not-allowed"),
	D(PropOpacity, "0.4"),
}

var optionChecked = Set{
	D(PropIndicatorBorder, Transparent),
	D(PropIndicatorFill, CurrentColor),
}

type optionColorKey struct {
	color   ColorRole
	checked bool
}

type optionStateKey struct {
	disabled bool
	checked  bool
}

var optionColorCombos = map[optionColorKey]Set{
	{ColorPrimary, true}: {
		D(PropIndicatorBorder, Palette[ColorPrimary].Base),
		D(PropIndicatorFill, Palette[ColorPrimary].Base),
	},
	{ColorDanger, true}: {
		D(PropIndicatorBorder, Palette[ColorDanger].Base),
		D(PropIndicatorFill, Palette[ColorDanger].Base),
	},
}

var optionStateCombos = map[optionStateKey]Set{
	{disabled: true, checked: false}: {
		D(PropIndicatorFill, indicatorWash),
	},
	{disabled: true, checked: true}: {
		D(PropIndicatorBorder, indicatorGray),
		D(PropIndicatorFill, indicatorWash),
		D(PropIndicatorDot, indicatorBlack),
	},
}

// ResolveOption maps option inputs to an ordered directive set using the
// same stage ordering as Resolve.
func ResolveOption(in OptionInputs) Set {
	if in.Color == ColorUnset {
		in.Color = ColorDefault
	}

	var out Set
	out = append(out, optionBase.withStage(StageBase)...)
	if in.Disabled {
		out = append(out, optionDisabled.withStage(StageAxis)...)
	}
	if in.Checked {
		out = append(out, optionChecked.withStage(StageAxis)...)
	}
	out = append(out, optionColorCombos[optionColorKey{in.Color, in.Checked}].withStage(StageCombination)...)
	out = append(out, optionStateCombos[optionStateKey{in.Disabled, in.Checked}].withStage(StageCombination)...)
	return out
}
