package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

//go:embed gallery.yaml
var defaultGallery []byte

// DefaultSource is the name reported for the built-in gallery document.
const DefaultSource = "<builtin>"

// ParseConfig loads a gallery file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a gallery document. source names the document in errors.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, kerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in gallery.
func Default() *Config {
	cfg, err := Parse(defaultGallery, DefaultSource)
	if err != nil {
		panic(fmt.Sprintf("built-in gallery is invalid: %v", err))
	}
	return cfg
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
