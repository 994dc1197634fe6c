package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// convertValidationError normalizes validator errors into kinetic validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kerrors.NewValidationError(field, msg, err)
	}

	return kerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.buttons[0].label" into "buttons[0].label".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

// yamlTagName reports the yaml key of a struct field for validator namespaces.
func yamlTagName(tag string, fallback string) string {
	name := strings.SplitN(tag, ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(fallback)
	}
	return name
}

func fieldForButton(index int, field string) string {
	return fmt.Sprintf("buttons[%d].%s", index, field)
}

func fieldForRadio(index int, field string) string {
	return fmt.Sprintf("radios[%d].%s", index, field)
}

func fieldForOption(index int, field string) string {
	return fmt.Sprintf("radio_group.options[%d].%s", index, field)
}

// axisField wraps a boundary parse failure with the field it came from. The
// original *errors.ConfigError stays reachable through errors.As.
func axisField(field string, err error) error {
	var cfgErr *kerrors.ConfigError
	if errors.As(err, &cfgErr) {
		return kerrors.NewValidationError(field+"."+cfgErr.Axis, cfgErr.Error(), err)
	}
	return kerrors.NewValidationError(field, err.Error(), err)
}
