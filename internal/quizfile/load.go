package quizfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a questionnaire file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension. Anything other
// than .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads, parses, validates and normalizes a questionnaire file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read questionnaire: %w", err)
	}
	def, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes data in the given format, validates it against the
// questionnaire schema and normalizes it.
func Parse(data []byte, format Format) (Definition, error) {
	var (
		def Definition
		err error
	)
	switch format {
	case FormatJSON:
		def, err = decodeJSON(data)
	case FormatYAML:
		def, err = decodeYAML(data)
	default:
		return Definition{}, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return Definition{}, err
	}

	if err := validateSchema(def); err != nil {
		return Definition{}, err
	}
	return Normalize(def)
}

func decodeJSON(data []byte) (Definition, error) {
	var def Definition
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return Definition{}, errors.New("parse json: multiple documents are not supported")
		}
		return Definition{}, fmt.Errorf("parse json: %w", err)
	}
	return def, nil
}

func decodeYAML(data []byte) (Definition, error) {
	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, errors.New("parse yaml: empty document")
		}
		return Definition{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return Definition{}, errors.New("parse yaml: multiple documents are not supported")
		}
		return Definition{}, fmt.Errorf("parse yaml: %w", err)
	}
	return def, nil
}
