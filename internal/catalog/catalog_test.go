package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-generator/conversion"
	"bridge-generator/internal/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	yaml := `
conversions:
  - strategy: string
    c_value: "ptr_{{.name}}"
    closure:
      head: "{{.value}}.withUTF8CString { ptr_{{.name}} in"
      tail: "}"
    native_value: "String(utf8: {{.value}})"
  - strategy: bitmask
    c_value: "{{.value}}.bits"
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	require.Len(t, f.Conversions, 2)

	e := f.Conversions[0]
	assert.Equal(t, "string", e.Strategy)
	require.NotNil(t, e.Closure)
	assert.Equal(t, "}", e.Closure.Tail)
	assert.Equal(t, conversion.Definition{
		CValue:      "ptr_{{.name}}",
		ClosureHead: "{{.value}}.withUTF8CString { ptr_{{.name}} in",
		ClosureTail: "}",
		NativeValue: "String(utf8: {{.value}})",
	}, e.Definition())

	assert.Nil(t, f.Conversions[1].Closure)
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("conversions: [strategy"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogParse))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     *File
		errCode  string
		warnCode string
	}{
		{name: "nil", file: nil, errCode: "catalog_is_nil"},
		{name: "version", file: &File{Version: "2"}, errCode: "unsupported_version"},
		{
			name:    "unknown strategy",
			file:    &File{Version: "1", Conversions: []Entry{{Strategy: "blob", CValue: "x"}}},
			errCode: "unknown_strategy",
		},
		{
			name: "duplicate",
			file: &File{Version: "1", Conversions: []Entry{
				{Strategy: "enum", CValue: "{{.value}}.raw"},
				{Strategy: "enum", CValue: "{{.value}}.tag"},
			}},
			errCode: "duplicate_strategy",
		},
		{
			name:    "empty c value",
			file:    &File{Version: "1", Conversions: []Entry{{Strategy: "enum"}}},
			errCode: "empty_c_value",
		},
		{
			name: "half closure",
			file: &File{Version: "1", Conversions: []Entry{
				{Strategy: "string", CValue: "s", Closure: &Closure{Head: "do {"}},
			}},
			errCode: "incomplete_closure",
		},
		{
			name:    "parse error",
			file:    &File{Version: "1", Conversions: []Entry{{Strategy: "enum", CValue: "{{.value"}}},
			errCode: "template_parse",
		},
		{
			name: "name in native template",
			file: &File{Version: "1", Conversions: []Entry{
				{Strategy: "enum", CValue: "{{.value}}.raw", NativeValue: "make({{.name}})"},
			}},
			errCode: "template_render",
		},
		{
			name:    "unknown key",
			file:    &File{Version: "1", Conversions: []Entry{{Strategy: "enum", CValue: "{{.other}}"}}},
			errCode: "template_render",
		},
		{
			name:     "closure dropped",
			file: &File{Version: "1", Conversions: []Entry{
				{Strategy: "string", CValue: "{{.value}}", NativeValue: "String(cString: {{.value}})"},
			}},
			warnCode: "closure_dropped",
		},
		{
			name: "native dropped",
			file: &File{Version: "1", Conversions: []Entry{
				{Strategy: "object", CValue: "{{.value}}.handle"},
			}},
			warnCode: "native_value_dropped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := Validate(tt.file, conversion.Default())

			if tt.errCode == "" {
				assert.False(t, diags.HasErrors(), "%v", diags.Error())
			} else {
				require.True(t, diags.HasErrors())
				assert.Equal(t, tt.errCode, diags.Errors[0].Code)
			}

			if tt.warnCode != "" {
				require.Len(t, diags.Warnings, 1)
				assert.Equal(t, tt.warnCode, diags.Warnings[0].Code)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	base := conversion.Default()
	f := &File{Version: "1", Conversions: []Entry{
		{Strategy: "bitmask", CValue: "{{.value}}.bits"},
		{
			Strategy: "string",
			CValue:   "ptr_{{.name}}",
			Closure:  &Closure{Head: "{{.value}}.withUTF8 { ptr_{{.name}} in", Tail: "}"},
		},
	}}

	reg, err := Apply(base, f)
	require.NoError(t, err)

	bitmask, _ := reg.Lookup(conversion.StrategyBitmask)
	assert.Equal(t, "flags.bits", bitmask.CValue("flags"))

	str, _ := reg.Lookup(conversion.StrategyString)
	assert.Equal(t, "label.withUTF8 { ptr_label in", str.ClosureHead("label"))

	enum, _ := reg.Lookup(conversion.StrategyEnum)
	assert.Same(t, conversion.Enum, enum)

	// base untouched
	orig, _ := base.Lookup(conversion.StrategyBitmask)
	assert.Same(t, conversion.Bitmask, orig)
}

func TestApplyInvalid(t *testing.T) {
	t.Parallel()

	_, err := Apply(conversion.Default(), &File{Version: "1", Conversions: []Entry{{Strategy: "blob", CValue: "x"}}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogInvalid))
	assert.ErrorContains(t, err, "unknown_strategy")
}

func TestFromRegistryRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")

	exported := FromRegistry(conversion.Default())
	require.Len(t, exported.Conversions, conversion.StrategyTotal-1)
	require.NoError(t, WriteFile(exported, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exported, loaded)

	diags := Validate(loaded, conversion.Default())
	assert.False(t, diags.HasErrors(), "%v", diags.Error())
	assert.Empty(t, diags.Warnings)

	reg, err := Apply(conversion.Default(), loaded)
	require.NoError(t, err)

	for _, s := range conversion.AllStrategies() {
		want, _ := conversion.Default().Lookup(s)
		got, _ := reg.Lookup(s)
		assert.Equal(t, want.CValue("n", conversion.Prefix("self.")), got.CValue("n", conversion.Prefix("self.")), s.String())
		assert.Equal(t, want.RequiresClosure(), got.RequiresClosure(), s.String())
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogLoad))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
