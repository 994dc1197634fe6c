package config

import (
	"github.com/alexisbeaulieu97/kinetic/internal/ui/components"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
)

// Props converts the spec into button props. Enumerated fields go through
// the variant parsers, so unknown names fail with *errors.ConfigError.
// Callbacks are left for the caller to attach.
func (b ButtonSpec) Props() (components.ButtonProps, error) {
	kind, err := variant.ParseKind(b.Kind)
	if err != nil {
		return components.ButtonProps{}, err
	}
	treatment, err := variant.ParseTreatment(b.Variant)
	if err != nil {
		return components.ButtonProps{}, err
	}
	color, err := variant.ParseColor(b.Color)
	if err != nil {
		return components.ButtonProps{}, err
	}
	size, err := variant.ParseSize(b.Size)
	if err != nil {
		return components.ButtonProps{}, err
	}
	shape, err := variant.ParseShape(b.Shape)
	if err != nil {
		return components.ButtonProps{}, err
	}
	pos, err := components.ParseIconPosition(b.IconPosition)
	if err != nil {
		return components.ButtonProps{}, err
	}

	props := components.ButtonProps{
		Label:           b.Label,
		Kind:            kind,
		Treatment:       treatment,
		Color:           color,
		Danger:          b.Danger,
		Size:            size,
		Shape:           shape,
		Block:           b.Block,
		Ghost:           b.Ghost,
		Disabled:        b.Disabled,
		Loading:         b.Loading.Prop(),
		Icon:            b.Icon,
		IconPosition:    pos,
		Href:            b.Href,
		Target:          b.Target,
		HTMLType:        components.HTMLType(b.HTMLType),
		AutoInsertSpace: b.AutoInsertSpace,
		Attrs:           b.Attrs,
	}
	return props, props.Validate()
}

// Prop converts the YAML form into the component loading prop.
func (l LoadingSpec) Prop() components.LoadingProp {
	if !l.Enabled {
		return components.LoadingOff()
	}
	return components.LoadingAfter(l.Delay, l.Icon)
}

// Props converts the spec into radio props.
func (r RadioSpec) Props() (components.RadioProps, error) {
	color, err := variant.ParseColor(r.Color)
	if err != nil {
		return components.RadioProps{}, err
	}
	props := components.RadioProps{
		Label:          r.Label,
		Color:          color,
		Disabled:       r.Disabled,
		DefaultChecked: r.DefaultChecked,
		Value:          r.Value,
		AutoFocus:      r.AutoFocus,
	}
	if r.Checked != nil {
		props.Checked = components.Controlled(*r.Checked)
	}
	return props, props.Validate()
}

// Props converts the spec into radio group props.
func (g RadioGroupSpec) Props() (components.RadioGroupProps, error) {
	color, err := variant.ParseColor(g.Color)
	if err != nil {
		return components.RadioGroupProps{}, err
	}
	if err := (variant.OptionInputs{Color: color}).Validate(); err != nil {
		return components.RadioGroupProps{}, err
	}
	options := make([]components.RadioOption, 0, len(g.Options))
	for _, opt := range g.Options {
		options = append(options, components.RadioOption{Label: opt.Label, Value: opt.Value, Disabled: opt.Disabled})
	}
	return components.RadioGroupProps{
		Options:  options,
		Value:    g.Value,
		Color:    color,
		Disabled: g.Disabled,
	}, nil
}
