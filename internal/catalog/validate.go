package catalog

import (
	"fmt"

	"bridge-generator/conversion"
	"bridge-generator/internal/diagnostic"
	"bridge-generator/internal/errors"
	"bridge-generator/internal/logging"
)

// probeName is bound to {{.name}} when test-rendering templates.
const probeName = "probe"

// Validate checks a catalog against the registry it would be applied to.
// Every template is compiled and test-rendered with a probe name.
func Validate(f *File, base conversion.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported catalog version %q, expected %q", f.Version, CurrentVersion), "", "version")
	}

	seen := map[conversion.Strategy]struct{}{}

	for i := range f.Conversions {
		e := &f.Conversions[i]

		strategy, err := conversion.ParseStrategy(e.Strategy)
		if err != nil {
			res.AddError("unknown_strategy", fmt.Sprintf("unknown strategy %q", e.Strategy), e.Strategy, "strategy")
			continue
		}

		if _, ok := seen[strategy]; ok {
			res.AddError("duplicate_strategy", fmt.Sprintf("strategy %q is defined more than once", e.Strategy),
				e.Strategy, "strategy")
			continue
		}

		seen[strategy] = struct{}{}

		validateEntry(res, e, base[strategy])
	}

	return res
}

func validateEntry(res *diagnostic.Diagnostics, e *Entry, prev *conversion.Conversion) {
	if e.CValue == "" {
		res.AddError("empty_c_value", "c_value is empty", e.Strategy, "c_value")
		return
	}

	if e.Closure != nil && (e.Closure.Head == "" || e.Closure.Tail == "") {
		res.AddError("incomplete_closure", "closure needs both head and tail", e.Strategy, "closure")
		return
	}

	c, err := conversion.Compile(e.Definition())
	if err != nil {
		res.AddError("template_parse", err.Error(), e.Strategy, "")
		return
	}

	type renderProbe struct {
		field string
		fn    func()
	}

	probes := []renderProbe{{"c_value", func() { c.CValue(probeName) }}}

	if c.RequiresClosure() {
		probes = append(probes,
			renderProbe{"closure.head", func() { c.ClosureHead(probeName) }},
			renderProbe{"closure.tail", func() { c.ClosureTail(probeName) }})
	}

	if c.HasNativeValue() {
		probes = append(probes, renderProbe{"native_value", func() { c.NativeValue(probeName) }})
	}

	for _, p := range probes {
		if err := probe(p.fn); err != nil {
			res.AddError("template_render", err.Error(), e.Strategy, p.field)
		}
	}

	if prev == nil {
		return
	}

	if prev.RequiresClosure() && !c.RequiresClosure() {
		res.AddWarning("closure_dropped",
			"override removes the closure; temporaries may not outlive the call", e.Strategy, "closure")
	}

	if prev.HasNativeValue() && !c.HasNativeValue() {
		res.AddWarning("native_value_dropped", "override removes native value reconstruction",
			e.Strategy, "native_value")
	}
}

// probe runs fn and converts a render panic into an error.
func probe(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}

			err = fmt.Errorf("%v", r)
		}
	}()

	fn()

	return nil
}

// Apply returns a copy of base with the catalog entries compiled in. base is
// never modified.
func Apply(base conversion.Registry, f *File) (conversion.Registry, error) {
	diags := Validate(f, base)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags.Error(), errors.ErrCatalogInvalid, "invalid conversion catalog")
	}

	logger := logging.GetLogger("catalog")
	for _, w := range diags.Warnings {
		logger.Warn().Str("strategy", w.Strategy).Str("code", w.Code).Msg(w.Message)
	}

	res := base.Clone()
	if res == nil {
		res = conversion.Registry{}
	}

	for _, e := range f.Conversions {
		strategy, _ := conversion.ParseStrategy(e.Strategy)

		c, err := conversion.Compile(e.Definition())
		if err != nil {
			return nil, err
		}

		res[strategy] = c

		logger.Debug().Stringer("strategy", strategy).Msg("Conversion overridden")
	}

	return res, nil
}
