package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"bridge-generator/internal/errors"
	"bridge-generator/internal/logging"
)

// LoadFile loads and parses a YAML catalog from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to read catalog %s", path)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("catalog")
	logger.Debug().Str("path", path).Int("entries", len(f.Conversions)).Msg("Catalog loaded")

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogParse, "failed to parse catalog YAML")
	}

	applyDefaults(&f)

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return errors.Wrap(err, errors.ErrCatalogParse, "failed to marshal catalog")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrCatalogLoad, "failed to write catalog %s", path)
	}

	return nil
}
