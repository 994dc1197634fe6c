package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigErrorListsAllowedValues(t *testing.T) {
	t.Parallel()

	err := NewConfigError("kind", "primry", []string{"default", "primary"})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "kind", cfgErr.Axis)
	require.Equal(t, "primry", cfgErr.Value)
	require.Contains(t, err.Error(), `"primry"`)
	require.Contains(t, err.Error(), "default, primary")
}

func TestConfigErrorWithoutAllowedValues(t *testing.T) {
	t.Parallel()

	err := NewConfigError("shape", "hexagon", nil)
	require.Equal(t, `config error: unrecognized shape "hexagon"`, err.Error())
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("gallery.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "gallery.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "gallery.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("buttons[1].size", "must be one of small default middle large", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "buttons[1].size", validationErr.Field)
	require.Contains(t, err.Error(), "buttons[1].size")
}

func TestModeSwitchErrorNamesBothModes(t *testing.T) {
	t.Parallel()

	err := NewModeSwitchError("radio", "controlled", "uncontrolled")

	var switchErr *ModeSwitchError
	require.ErrorAs(t, err, &switchErr)
	require.Equal(t, "controlled", switchErr.From)
	require.Equal(t, "uncontrolled", switchErr.To)
	require.Contains(t, err.Error(), "[radio]")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var cfgErr *ConfigError
	var parseErr *ParseError
	var switchErr *ModeSwitchError
	require.Empty(t, cfgErr.Error())
	require.Empty(t, parseErr.Error())
	require.Empty(t, switchErr.Error())
	require.Nil(t, parseErr.Unwrap())
}
