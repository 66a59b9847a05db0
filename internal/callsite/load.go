package callsite

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bridge-generator/conversion"
)

// File is the YAML description of a call.
type File struct {
	Callee string         `yaml:"callee"`
	Result string         `yaml:"result,omitempty"`
	Args   []ArgumentSpec `yaml:"args"`
}

// ArgumentSpec names an argument and the strategy used to convert it.
type ArgumentSpec struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
	Value    string `yaml:"value,omitempty"`
}

// LoadFile reads a call description from path.
func LoadFile(path string, reg conversion.Registry) (Call, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Call{}, fmt.Errorf("failed to read call file %s: %w", path, err)
	}

	return Parse(data, reg)
}

// Parse decodes a call description and resolves its strategies in reg.
func Parse(data []byte, reg conversion.Registry) (Call, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return Call{}, fmt.Errorf("failed to parse call YAML: %w", err)
	}

	return f.Resolve(reg)
}

// Resolve turns the description into a Call.
func (f *File) Resolve(reg conversion.Registry) (Call, error) {
	if f.Callee == "" {
		return Call{}, errors.New("call has no callee")
	}

	call := Call{
		Callee: f.Callee,
		Result: f.Result,
		Args:   make([]Argument, 0, len(f.Args)),
	}

	for i, spec := range f.Args {
		if spec.Name == "" {
			return Call{}, fmt.Errorf("argument %d has no name", i)
		}

		strategy, err := conversion.ParseStrategy(spec.Strategy)
		if err != nil {
			return Call{}, fmt.Errorf("argument %q: %w", spec.Name, err)
		}

		c, ok := reg.Lookup(strategy)
		if !ok {
			return Call{}, fmt.Errorf("argument %q: strategy %s is not registered", spec.Name, strategy)
		}

		call.Args = append(call.Args, Argument{Name: spec.Name, Value: spec.Value, Conversion: c})
	}

	return call, nil
}
