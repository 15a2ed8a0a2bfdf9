package headerdict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyDictionary = errors.New("header dictionary has no headers")

// Load reads a header dictionary from a YAML or JSON file.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header dictionary: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a header dictionary from JSON (a document starting with
// '{') or YAML.
func Parse(data []byte) (*Dictionary, error) {
	var (
		d   Dictionary
		err error
	)
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &d)
	} else {
		err = yaml.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal header dictionary: %w", err)
	}
	if len(d.Headers) == 0 {
		return nil, ErrEmptyDictionary
	}
	d.Index()
	return &d, nil
}
