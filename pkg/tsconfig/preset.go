package tsconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset holds answers read from a YAML file. Unset keys leave the
// corresponding option untouched.
type Preset struct {
	Name       *string `yaml:"name"`
	Strictness *string `yaml:"strictness"`
	Transpile  *bool   `yaml:"transpile"`
	Library    *bool   `yaml:"library"`
	Monorepo   *bool   `yaml:"monorepo"`
	DOM        *bool   `yaml:"dom"`
}

func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file %q: %w", path, err)
	}

	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing preset YAML %q: %w", path, err)
	}

	if p.Strictness != nil {
		if _, err := ParseStrictness(*p.Strictness); err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", path, err)
		}
	}

	return &p, nil
}

// Apply overlays the preset on opts.
func (p *Preset) Apply(opts Options) Options {
	if p == nil {
		return opts
	}
	if p.Name != nil {
		opts.ProjectName = *p.Name
	}
	if p.Strictness != nil {
		// validated by LoadPreset
		if s, err := ParseStrictness(*p.Strictness); err == nil {
			opts.Strictness = s
		}
	}
	if p.Transpile != nil {
		opts.Transpile = *p.Transpile
	}
	if p.Library != nil {
		opts.Library = *p.Library
	}
	if p.Monorepo != nil {
		opts.Monorepo = *p.Monorepo
	}
	if p.DOM != nil {
		opts.DOM = *p.DOM
	}
	return opts
}
