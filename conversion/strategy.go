package conversion

import (
	"bridge-generator/internal/errors"
)

//go:generate go tool stringer -type=Strategy -linecomment -output=strategy_string.go

// Strategy names one C-interop argument passing pattern.
type Strategy int

const (
	_ Strategy = iota // skip zero value, use it as a default (invalid) value for Strategy

	StrategyImplicit              // implicit
	StrategyImplicitArray         // implicit-array
	StrategyEnum                  // enum
	StrategyEnumArray             // enum-array
	StrategyBitmask               // bitmask
	StrategyString                // string
	StrategyOptionalString        // optional-string
	StrategyStruct                // struct
	StrategyStructPointer         // struct-pointer
	StrategyOptionalStructPointer // optional-struct-pointer
	StrategyStructArray           // struct-array
	StrategyObject                // object
	StrategyOptionalObject        // optional-object
	StrategyObjectArray           // object-array
	StrategyLength                // length
	StrategySizeLength            // size-length
	StrategyUserData              // user-data

	// StrategyTotal is the number of Strategy values including the invalid zero value.
	StrategyTotal = int(iota)
)

// IsValid reports whether s names a known strategy.
func (s Strategy) IsValid() bool {
	return s > 0 && int(s) < StrategyTotal
}

// IsArray reports whether s passes the base address of a contiguous buffer.
func (s Strategy) IsArray() bool {
	switch s {
	default:
		return false
	case StrategyImplicitArray, StrategyEnumArray, StrategyStructArray, StrategyObjectArray:
		return true
	}
}

// IsOptional reports whether s tolerates an absent Swift value.
func (s Strategy) IsOptional() bool {
	switch s {
	default:
		return false
	case StrategyOptionalString, StrategyOptionalStructPointer, StrategyOptionalObject:
		return true
	}
}

// AllStrategies returns every valid strategy in declaration order.
func AllStrategies() []Strategy {
	res := make([]Strategy, 0, StrategyTotal-1)
	for s := Strategy(1); s.IsValid(); s++ {
		res = append(res, s)
	}

	return res
}

// ParseStrategy resolves a strategy from its kebab-case name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range AllStrategies() {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, errors.Newf(errors.ErrUnknownStrategy, "unknown conversion strategy %q", name).
		WithDetail("strategy", name)
}
