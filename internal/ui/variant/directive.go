package variant

import (
	"strings"
)

// Property names one style property a directive sets. Later directives for
// the same property override earlier ones.
type Property string

const (
	PropDisplay         Property = "display"
	PropAlign           Property = "align"
	PropCursor          Property = "cursor"
	PropUserSelect      Property = "user-select"
	PropFontWeight      Property = "font-weight"
	PropTextSize        Property = "text-size"
	PropRadius          Property = "radius"
	PropBorderStyle     Property = "border-style"
	PropBorderColor     Property = "border-color"
	PropBackground      Property = "background"
	PropForeground      Property = "foreground"
	PropWidth           Property = "width"
	PropPaddingX        Property = "padding-x"
	PropPaddingY        Property = "padding-y"
	PropOpacity         Property = "opacity"
	PropFocusRing       Property = "focus-ring"
	PropDisabledDim     Property = "disabled-dim"
	PropDisabledPointer Property = "disabled-pointer-events"
	PropHoverBackground Property = "hover-background"
	PropHoverUnderline  Property = "hover-underline"
	PropIndicatorBorder Property = "indicator-border"
	PropIndicatorFill   Property = "indicator-fill"
	PropIndicatorDot    Property = "indicator-dot"
)

// Common directive values.
const (
	Transparent  = "transparent"
	CurrentColor = "current"
	None         = "none"
)

// Stage records which resolution stage produced a directive.
type Stage int

const (
	StageShorthand Stage = iota + 1
	StageDanger
	StageBase
	StageAxis
	StageCombination
	StageOverride
)

func (s Stage) String() string {
	switch s {
	case StageShorthand:
		return "shorthand"
	case StageDanger:
		return "danger"
	case StageBase:
		return "base"
	case StageAxis:
		return "axis"
	case StageCombination:
		return "combination"
	case StageOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Directive is one atomic style instruction.
type Directive struct {
	Property Property `yaml:"property"`
	Value    string   `yaml:"value"`
	Stage    Stage    `yaml:"-"`
}

// D is shorthand for an unstaged directive, used when building tables and
// caller overrides.
func D(p Property, value string) Directive {
	return Directive{Property: p, Value: value}
}

func (d Directive) String() string {
	return string(d.Property) + ":" + d.Value
}

// Set is an ordered list of directives.
type Set []Directive

func (s Set) withStage(stage Stage) Set {
	out := make(Set, len(s))
	for i, d := range s {
		d.Stage = stage
		out[i] = d
	}
	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Merge appends others after s without collapsing.
func (s Set) Merge(others ...Set) Set {
	out := s.Clone()
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Collapse keeps only the last directive for each property. Properties keep
// the position of their first appearance so output is stable.
func (s Set) Collapse() Set {
	index := make(map[Property]int, len(s))
	out := make(Set, 0, len(s))
	for _, d := range s {
		if i, ok := index[d.Property]; ok {
			out[i] = d
			continue
		}
		index[d.Property] = len(out)
		out = append(out, d)
	}
	return out
}

// Value returns the effective value of p: the last directive that sets it.
func (s Set) Value(p Property) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Property == p {
			return s[i].Value, true
		}
	}
	return "", false
}

// Winner returns the directive that sets p last.
func (s Set) Winner(p Property) (Directive, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Property == p {
			return s[i], true
		}
	}
	return Directive{}, false
}

// ByStage returns the directives produced by a single stage.
func (s Set) ByStage(stage Stage) Set {
	var out Set
	for _, d := range s {
		if d.Stage == stage {
			out = append(out, d)
		}
	}
	return out
}

func (s Set) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}
