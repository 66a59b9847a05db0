// Package ctype models the native C types of the bound API and how they are
// spelled on the Swift side.
package ctype

import (
	"fmt"
	"strings"

	"bridge-generator/conversion"
)

// constantPrefix marks C preprocessor constants of the bound API.
const constantPrefix = "WGPU_"

var swiftNames = map[string]string{
	"void":         "Void",
	"void *":       "UnsafeMutableRawPointer!",
	"void const *": "UnsafeRawPointer!",
	"char":         "CChar",
	"float":        "Float",
	"double":       "Double",
	"uint8_t":      "UInt8",
	"uint16_t":     "UInt16",
	"uint32_t":     "UInt32",
	"uint64_t":     "UInt64",
	"int32_t":      "Int32",
	"int64_t":      "Int64",
	"size_t":       "Int",
	"int":          "Int32",
	"bool":         "Bool",
}

// NativeType is a C scalar or pointer type that needs no wrapper.
type NativeType struct {
	Name string
}

// CName returns the Swift spelling of the imported C type. Unknown names are
// returned unchanged.
func (t NativeType) CName() string {
	if name, ok := swiftNames[t.Name]; ok {
		return name
	}

	return t.Name
}

// SwiftName is the same as CName: native types are used as imported.
func (t NativeType) SwiftName() string {
	return t.CName()
}

// Category reports the conversion category of the type.
func (t NativeType) Category() conversion.Category {
	return conversion.CategoryNative
}

// IsSize reports whether t is size_t, which selects the size-length strategy
// for element counts.
func (t NativeType) IsSize() bool {
	return t.Name == "size_t"
}

// SwiftValue formats a default value from the API description as a Swift literal.
func (t NativeType) SwiftValue(value any) string {
	if s, ok := value.(string); ok {
		if strings.HasPrefix(s, constantPrefix) {
			return t.SwiftName() + "(" + s + ")"
		}

		if s == "NAN" {
			return ".nan"
		}

		if t.Name == "float" && strings.HasSuffix(s, "f") {
			return strings.TrimSuffix(s, "f")
		}
	}

	return fmt.Sprintf("%v", value)
}
