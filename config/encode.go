package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/grovetools/hookcfg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the serialization format for Export.
type ExportFormat string

const (
	FormatYAML ExportFormat = "yaml"
	FormatJSON ExportFormat = "json"
	FormatTOML ExportFormat = "toml"
)

// Marshal serializes the configuration back to canonical YAML: two-space
// indentation, empty optional fields omitted, repo and hook order preserved.
// Parsing the output yields an equal Config.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to serialize configuration")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to serialize configuration")
	}
	return buf.Bytes(), nil
}

// Export serializes the configuration in the requested format. JSON and
// TOML exports drop unknown extension blocks; only the YAML form is a full
// round-trip representation.
func (c *Config) Export(format ExportFormat) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return c.Marshal()
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to serialize configuration as JSON")
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to serialize configuration as TOML")
		}
		return data, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown export format '%s'", format))
	}
}
