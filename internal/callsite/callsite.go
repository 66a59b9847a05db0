// Package callsite renders a C function call whose arguments pass through
// conversions, nesting one closure per argument that needs its memory kept
// alive for the duration of the call.
package callsite

import (
	"slices"
	"strings"

	"bridge-generator/conversion"
)

// DefaultIndent is used when Options.Indent is empty.
const DefaultIndent = "    "

// Argument is one converted argument of a call.
type Argument struct {
	// Name is the identifier fragment used for intermediate variables.
	Name string
	// Value is the Swift expression to convert. Empty means Options.Prefix + Name.
	Value      string
	Conversion *conversion.Conversion
}

// Call is a single C function invocation.
type Call struct {
	Callee string
	// Result is emitted verbatim before the callee, e.g. "return " or "let result = ".
	Result string
	Args   []Argument
}

// Options control rendering.
type Options struct {
	Indent string
	Prefix string
}

// Render returns the lines of the wrapped call: closure heads in argument
// order, the call itself, then the tails in reverse order.
func Render(call Call, opts Options) []string {
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	var (
		lines   []string
		tails   []string
		cValues = make([]string, 0, len(call.Args))
	)

	for _, arg := range call.Args {
		args := arg.renderArgs(opts.Prefix)

		if arg.Conversion.RequiresClosure() {
			depth := strings.Repeat(indent, len(tails))
			lines = append(lines, depth+arg.Conversion.ClosureHead(arg.Name, args...))
			tails = append(tails, depth+arg.Conversion.ClosureTail(arg.Name, args...))
		}

		cValues = append(cValues, arg.Conversion.CValue(arg.Name, args...))
	}

	lines = append(lines, strings.Repeat(indent, len(tails))+
		call.Result+call.Callee+"("+strings.Join(cValues, ", ")+")")

	slices.Reverse(tails)

	return append(lines, tails...)
}

// Code is Render joined with newlines.
func Code(call Call, opts Options) string {
	return strings.Join(Render(call, opts), "\n")
}

func (a Argument) renderArgs(prefix string) []conversion.Arg {
	if a.Value != "" {
		return []conversion.Arg{conversion.Value(a.Value)}
	}

	return []conversion.Arg{conversion.Prefix(prefix)}
}
