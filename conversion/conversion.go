// Package conversion describes how a single argument or return value crosses
// the C/Swift boundary in generated binding code.
//
// A Conversion holds up to four templates: the C-side expression, an optional
// closure head/tail pair that keeps a temporary buffer or C string alive for
// the duration of the call, and an optional native template that rebuilds a
// Swift value from a raw C value. Templates use text/template syntax with two
// keys, {{.name}} and {{.value}}.
//
// Conversions are immutable once built and safe for concurrent use.
package conversion

import (
	"strings"
	"text/template"

	"bridge-generator/internal/errors"
)

const (
	keyName  = "name"
	keyValue = "value"
)

// Conversion renders the code fragments for one argument passing strategy.
type Conversion struct {
	def Definition

	cValue      *template.Template
	closure     *closure
	nativeValue *template.Template
}

type closure struct {
	head, tail *template.Template
}

// Definition is the source form of a Conversion.
type Definition struct {
	CValue      string
	ClosureHead string
	ClosureTail string
	NativeValue string
}

// Option configures a Conversion built with New.
type Option func(*Definition)

// WithClosure sets the closure head and tail templates.
func WithClosure(head, tail string) Option {
	return func(d *Definition) {
		d.ClosureHead = head
		d.ClosureTail = tail
	}
}

// WithNativeValue sets the template that reconstructs a Swift value from a C value.
func WithNativeValue(tmpl string) Option {
	return func(d *Definition) {
		d.NativeValue = tmpl
	}
}

// New builds a Conversion from built-in templates and panics if any of them
// fails to parse. Use Compile for templates coming from user input.
func New(cValue string, opts ...Option) *Conversion {
	def := Definition{CValue: cValue}
	for _, opt := range opts {
		opt(&def)
	}

	c, err := Compile(def)
	if err != nil {
		panic(err)
	}

	return c
}

// Compile parses every template of def.
func Compile(def Definition) (*Conversion, error) {
	if def.CValue == "" {
		return nil, errors.New(errors.ErrTemplateParse, "c value template is empty")
	}

	if (def.ClosureHead == "") != (def.ClosureTail == "") {
		return nil, errors.New(errors.ErrTemplateParse, "closure needs both a head and a tail template")
	}

	c := &Conversion{def: def}

	var err error

	c.cValue, err = parse("c_value", def.CValue)
	if err != nil {
		return nil, err
	}

	if def.ClosureHead != "" {
		c.closure = &closure{}

		c.closure.head, err = parse("closure_head", def.ClosureHead)
		if err != nil {
			return nil, err
		}

		c.closure.tail, err = parse("closure_tail", def.ClosureTail)
		if err != nil {
			return nil, err
		}
	}

	if def.NativeValue != "" {
		c.nativeValue, err = parse("native_value", def.NativeValue)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

func parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse, "parse %s template", name).
			WithDetail("template", text)
	}

	return tmpl, nil
}

// Definition returns the templates c was built from.
func (c *Conversion) Definition() Definition {
	return c.def
}

// RequiresClosure reports whether the call site must be wrapped in the closure
// head and tail.
func (c *Conversion) RequiresClosure() bool {
	return c.closure != nil
}

// HasNativeValue reports whether c can reconstruct a Swift value from a C value.
func (c *Conversion) HasNativeValue() bool {
	return c.nativeValue != nil
}

// CValue renders the C-side expression for name.
func (c *Conversion) CValue(name string, args ...Arg) string {
	return render(c.cValue, bind(name, args))
}

// ClosureHead renders the scope opening fragment. It panics if c does not
// require a closure.
func (c *Conversion) ClosureHead(name string, args ...Arg) string {
	c.mustHaveClosure()
	return render(c.closure.head, bind(name, args))
}

// ClosureTail renders the scope closing fragment. It panics if c does not
// require a closure.
func (c *Conversion) ClosureTail(name string, args ...Arg) string {
	c.mustHaveClosure()
	return render(c.closure.tail, bind(name, args))
}

// NativeValue renders the Swift expression rebuilding a value from the raw C
// value. Only {{.value}} is bound. It panics if c has no native template.
func (c *Conversion) NativeValue(value string) string {
	if c.nativeValue == nil {
		panic(errors.New(errors.ErrMissingNativeTemplate, "conversion has no native value template").
			WithDetail("c_value", c.def.CValue))
	}

	return render(c.nativeValue, map[string]string{keyValue: value})
}

func (c *Conversion) mustHaveClosure() {
	if c.closure == nil {
		panic(errors.New(errors.ErrMissingClosure, "conversion does not require a closure").
			WithDetail("c_value", c.def.CValue))
	}
}

func render(tmpl *template.Template, data map[string]string) string {
	var buf strings.Builder

	err := tmpl.Execute(&buf, data)
	if err != nil {
		panic(errors.Wrapf(err, errors.ErrTemplateRender, "render %s template", tmpl.Name()))
	}

	return buf.String()
}
