package conversion

import (
	"maps"
	"slices"
)

var (
	Implicit = New("{{.value}}",
		WithNativeValue("{{.value}}"))

	ImplicitArray = New("buffer_{{.name}}.baseAddress",
		WithClosure("{{.value}}.withUnsafeBufferPointer { buffer_{{.name}} in", "}"))

	Enum = New("{{.value}}.cValue",
		WithNativeValue(".init(cValue: {{.value}})"))

	EnumArray = New("buffer_{{.name}}.baseAddress",
		WithClosure("{{.value}}.map { $0.cValue }.withUnsafeBufferPointer { buffer_{{.name}} in", "}"))

	Bitmask = New("{{.value}}.rawValue")

	String = New("cString_{{.name}}",
		WithClosure("{{.value}}.withCString { cString_{{.name}} in", "}"),
		WithNativeValue("String(cString: {{.value}})"))

	OptionalString = New("cString_{{.name}}",
		WithClosure("{{.value}}.withOptionalCString { cString_{{.name}} in", "}"))

	// Struct passes the C struct by value, StructPointer passes its address.
	Struct = New("cStruct_{{.name}}.pointee",
		WithClosure("{{.value}}.withCStruct { cStruct_{{.name}} in", "}"))

	StructPointer = New("cStruct_{{.name}}",
		WithClosure("{{.value}}.withCStruct { cStruct_{{.name}} in", "}"))

	OptionalStructPointer = New("cStruct_{{.name}}",
		WithClosure("{{.value}}.withOptionalCStruct { cStruct_{{.name}} in", "}"))

	StructArray = New("buffer_{{.name}}.baseAddress",
		WithClosure("{{.value}}.withCStructBufferPointer { buffer_{{.name}} in", "}"))

	Object = New("{{.value}}.object",
		WithNativeValue(".init(object: {{.value}})"))

	OptionalObject = New("{{.value}}?.object")

	ObjectArray = New("buffer_{{.name}}.baseAddress",
		WithClosure("{{.value}}.map { $0.object }.withUnsafeBufferPointer { buffer_{{.name}} in", "}"))

	// Length and SizeLength expect the array expression as value, not the
	// length parameter itself.
	Length = New("UInt32({{.value}}.count)")

	SizeLength = New("{{.value}}.count")

	UserData = New("Unmanaged.passRetained(CallbackUserData({{.value}})).toOpaque()")
)

// Registry maps strategies to their conversions. A Registry is never mutated
// after it is built; derived registries are copies.
type Registry map[Strategy]*Conversion

var defaultRegistry Registry

func init() {
	defaultRegistry = Registry{
		StrategyImplicit:              Implicit,
		StrategyImplicitArray:         ImplicitArray,
		StrategyEnum:                  Enum,
		StrategyEnumArray:             EnumArray,
		StrategyBitmask:               Bitmask,
		StrategyString:                String,
		StrategyOptionalString:        OptionalString,
		StrategyStruct:                Struct,
		StrategyStructPointer:         StructPointer,
		StrategyOptionalStructPointer: OptionalStructPointer,
		StrategyStructArray:           StructArray,
		StrategyObject:                Object,
		StrategyOptionalObject:        OptionalObject,
		StrategyObjectArray:           ObjectArray,
		StrategyLength:                Length,
		StrategySizeLength:            SizeLength,
		StrategyUserData:              UserData,
	}
}

// Default returns a copy of the built-in registry.
func Default() Registry {
	return defaultRegistry.Clone()
}

// Lookup returns the conversion registered for s.
func (r Registry) Lookup(s Strategy) (*Conversion, bool) {
	c, ok := r[s]
	return c, ok
}

// Strategies returns the registered strategies in declaration order.
func (r Registry) Strategies() []Strategy {
	return slices.Sorted(maps.Keys(r))
}

// Clone returns a shallow copy of r. Conversions are immutable, so sharing
// them between registries is safe.
func (r Registry) Clone() Registry {
	return maps.Clone(r)
}
