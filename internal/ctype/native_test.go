package ctype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-generator/conversion"
	"bridge-generator/internal/ctype"
)

func TestCName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"void":            "Void",
		"void *":          "UnsafeMutableRawPointer!",
		"void const *":    "UnsafeRawPointer!",
		"uint32_t":        "UInt32",
		"size_t":          "Int",
		"int":             "Int32",
		"bool":            "Bool",
		"WGPUFlags":       "WGPUFlags",
		"unknown_thing_t": "unknown_thing_t",
	}

	for name, want := range tests {
		nt := ctype.NativeType{Name: name}
		assert.Equal(t, want, nt.CName(), name)
		assert.Equal(t, want, nt.SwiftName(), name)
	}
}

func TestSwiftValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   string
		value any
		want  string
	}{
		{"constant", "uint32_t", "WGPU_ARRAY_LAYER_COUNT_UNDEFINED", "UInt32(WGPU_ARRAY_LAYER_COUNT_UNDEFINED)"},
		{"nan", "float", "NAN", ".nan"},
		{"float suffix", "float", "0.5f", "0.5"},
		{"double keeps suffix", "double", "0.5f", "0.5f"},
		{"integer", "uint32_t", 4, "4"},
		{"bool", "bool", true, "true"},
		{"float literal", "float", 1.5, "1.5"},
		{"plain string", "uint64_t", "0xFFFF", "0xFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ctype.NativeType{Name: tt.typ}.SwiftValue(tt.value))
		})
	}
}

func TestNativeSelection(t *testing.T) {
	t.Parallel()

	count := ctype.NativeType{Name: "size_t"}
	require.Equal(t, conversion.CategoryNative, count.Category())

	s, err := conversion.Select(conversion.Param{Category: count.Category(), Length: true, SizeT: count.IsSize()})
	require.NoError(t, err)
	assert.Equal(t, conversion.StrategySizeLength, s)

	s, err = conversion.Select(conversion.Param{Category: ctype.NativeType{Name: "uint32_t"}.Category(), Length: true})
	require.NoError(t, err)
	assert.Equal(t, conversion.StrategyLength, s)
}
