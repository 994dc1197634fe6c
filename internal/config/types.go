package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents a gallery document: the controls the gallery shows and
// how they are styled.
type Config struct {
	Version    string          `yaml:"version" validate:"required,semver"`
	Title      string          `yaml:"title" validate:"required,min=1,max=100"`
	Theme      string          `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark default"`
	Buttons    []ButtonSpec    `yaml:"buttons,omitempty" validate:"omitempty,dive"`
	RadioGroup *RadioGroupSpec `yaml:"radio_group,omitempty"`
	Radios     []RadioSpec     `yaml:"radios,omitempty" validate:"omitempty,dive"`
}

// ButtonSpec describes one action element.
type ButtonSpec struct {
	Label           string            `yaml:"label,omitempty" validate:"required_without=Icon,max=60"`
	Kind            string            `yaml:"kind,omitempty"`
	Variant         string            `yaml:"variant,omitempty"`
	Color           string            `yaml:"color,omitempty"`
	Size            string            `yaml:"size,omitempty"`
	Shape           string            `yaml:"shape,omitempty"`
	Danger          bool              `yaml:"danger,omitempty"`
	Block           bool              `yaml:"block,omitempty"`
	Ghost           bool              `yaml:"ghost,omitempty"`
	Disabled        bool              `yaml:"disabled,omitempty"`
	Loading         LoadingSpec       `yaml:"loading,omitempty"`
	Icon            string            `yaml:"icon,omitempty" validate:"omitempty,max_cells=2"`
	IconPosition    string            `yaml:"icon_position,omitempty" validate:"omitempty,oneof=start end"`
	Href            string            `yaml:"href,omitempty" validate:"omitempty,url"`
	Target          string            `yaml:"target,omitempty"`
	HTMLType        string            `yaml:"html_type,omitempty" validate:"omitempty,oneof=button submit reset"`
	AutoInsertSpace *bool             `yaml:"auto_insert_space,omitempty"`
	Job             time.Duration     `yaml:"job,omitempty"`
	Attrs           map[string]string `yaml:"attrs,omitempty"`
}

// LoadingSpec is the loading prop as written in YAML: either a boolean or a
// mapping with an optional delay and indicator icon. A mapping always means
// loading is requested.
type LoadingSpec struct {
	Enabled bool
	Delay   time.Duration
	Icon    string
}

// UnmarshalYAML accepts `loading: true` as well as
// `loading: {delay: 300ms, icon: "…"}`.
func (l *LoadingSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return fmt.Errorf("line %d: loading must be a boolean or a mapping: %w", value.Line, err)
		}
		*l = LoadingSpec{Enabled: enabled}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Delay string `yaml:"delay"`
			Icon  string `yaml:"icon"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		var delay time.Duration
		if strings.TrimSpace(raw.Delay) != "" {
			parsed, err := time.ParseDuration(strings.TrimSpace(raw.Delay))
			if err != nil {
				return fmt.Errorf("line %d: loading.delay: %w", value.Line, err)
			}
			delay = parsed
		}
		*l = LoadingSpec{Enabled: true, Delay: delay, Icon: raw.Icon}
		return nil
	}
	return fmt.Errorf("line %d: loading must be a boolean or a mapping", value.Line)
}

// MarshalYAML writes the short boolean form when no delay or icon is set.
func (l LoadingSpec) MarshalYAML() (interface{}, error) {
	if l.Delay == 0 && l.Icon == "" {
		return l.Enabled, nil
	}
	out := map[string]string{}
	if l.Delay != 0 {
		out["delay"] = l.Delay.String()
	}
	if l.Icon != "" {
		out["icon"] = l.Icon
	}
	return out, nil
}

// RadioSpec describes a standalone selectable element. Setting Checked makes
// the radio controlled by the gallery.
type RadioSpec struct {
	Label          string `yaml:"label" validate:"required,max=60"`
	Value          string `yaml:"value,omitempty"`
	Color          string `yaml:"color,omitempty"`
	Disabled       bool   `yaml:"disabled,omitempty"`
	Checked        *bool  `yaml:"checked,omitempty"`
	DefaultChecked bool   `yaml:"default_checked,omitempty"`
	AutoFocus      bool   `yaml:"auto_focus,omitempty"`
}

// RadioGroupSpec describes a set of radios sharing one selected value.
type RadioGroupSpec struct {
	Value    string       `yaml:"value,omitempty"`
	Color    string       `yaml:"color,omitempty"`
	Disabled bool         `yaml:"disabled,omitempty"`
	Options  []OptionSpec `yaml:"options" validate:"required,min=1,dive"`
}

// OptionSpec is one entry of a radio group.
type OptionSpec struct {
	Label    string `yaml:"label" validate:"required,max=60"`
	Value    string `yaml:"value" validate:"required"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// ThemeName returns the configured theme, defaulting to light.
func (c *Config) ThemeName() string {
	if c == nil || strings.TrimSpace(c.Theme) == "" {
		return "light"
	}
	return c.Theme
}
