// Package catalog loads YAML files that override the built-in conversion
// templates, e.g. to target a different wrapper API on the Swift side.
//
// Example:
//
//	version: "1"
//	conversions:
//	  - strategy: string
//	    c_value: "cString_{{.name}}"
//	    closure:
//	      head: "{{.value}}.withCString { cString_{{.name}} in"
//	      tail: "}"
//	    native_value: "String(cString: {{.value}})"
package catalog

import (
	"bridge-generator/conversion"
)

// CurrentVersion is the only catalog format version understood.
const CurrentVersion = "1"

// File is the top-level catalog document.
type File struct {
	Version     string  `yaml:"version"`
	Conversions []Entry `yaml:"conversions"`
}

// Entry overrides the templates of one strategy.
type Entry struct {
	Strategy    string   `yaml:"strategy"`
	CValue      string   `yaml:"c_value"`
	Closure     *Closure `yaml:"closure,omitempty"`
	NativeValue string   `yaml:"native_value,omitempty"`
}

// Closure is the head/tail template pair of an entry.
type Closure struct {
	Head string `yaml:"head"`
	Tail string `yaml:"tail"`
}

// Definition converts the entry to its conversion source form.
func (e Entry) Definition() conversion.Definition {
	def := conversion.Definition{
		CValue:      e.CValue,
		NativeValue: e.NativeValue,
	}

	if e.Closure != nil {
		def.ClosureHead = e.Closure.Head
		def.ClosureTail = e.Closure.Tail
	}

	return def
}

// FromRegistry builds a catalog describing every conversion in reg.
func FromRegistry(reg conversion.Registry) *File {
	f := &File{Version: CurrentVersion}

	for _, s := range reg.Strategies() {
		def := reg[s].Definition()

		e := Entry{
			Strategy:    s.String(),
			CValue:      def.CValue,
			NativeValue: def.NativeValue,
		}

		if def.ClosureHead != "" {
			e.Closure = &Closure{Head: def.ClosureHead, Tail: def.ClosureTail}
		}

		f.Conversions = append(f.Conversions, e)
	}

	return f
}
