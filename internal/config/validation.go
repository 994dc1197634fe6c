package config

import (
	"fmt"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire gallery document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return kerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i, button := range cfg.Buttons {
		if button.Job < 0 {
			return kerrors.NewValidationError(fieldForButton(i, "job"), "must not be negative", nil)
		}
		if button.Loading.Delay < 0 {
			return kerrors.NewValidationError(fieldForButton(i, "loading.delay"), "must not be negative", nil)
		}
		if _, err := button.Props(); err != nil {
			return axisField(fmt.Sprintf("buttons[%d]", i), err)
		}
	}

	for i, radio := range cfg.Radios {
		if _, err := radio.Props(); err != nil {
			return axisField(fmt.Sprintf("radios[%d]", i), err)
		}
	}

	if cfg.RadioGroup != nil {
		if err := validateRadioGroup(cfg.RadioGroup); err != nil {
			return err
		}
	}

	return nil
}

func validateRadioGroup(group *RadioGroupSpec) error {
	if _, err := group.Props(); err != nil {
		return axisField("radio_group", err)
	}

	seen := make(map[string]bool, len(group.Options))
	for i, opt := range group.Options {
		if seen[opt.Value] {
			return kerrors.NewValidationError(fieldForOption(i, "value"), fmt.Sprintf("duplicate value %q", opt.Value), nil)
		}
		seen[opt.Value] = true
	}

	if group.Value != "" && !seen[group.Value] {
		return kerrors.NewValidationError("radio_group.value", fmt.Sprintf("references unknown option %q", group.Value), nil)
	}
	return nil
}
