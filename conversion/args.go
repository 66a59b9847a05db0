package conversion

// Arg adjusts how the value substituted for {{.value}} is derived.
type Arg func(*args)

type args struct {
	value  string
	prefix string
}

// Value sets the converted expression explicitly. A non-empty value wins over
// any Prefix.
func Value(value string) Arg {
	return func(a *args) {
		a.value = value
	}
}

// Prefix derives the value as prefix + name when no Value is given,
// e.g. Prefix("self.") turns name "label" into "self.label".
func Prefix(prefix string) Arg {
	return func(a *args) {
		a.prefix = prefix
	}
}

func bind(name string, opts []Arg) map[string]string {
	var a args
	for _, opt := range opts {
		opt(&a)
	}

	value := a.value
	if value == "" {
		value = a.prefix + name
	}

	return map[string]string{
		keyName:  name,
		keyValue: value,
	}
}
