package conversion

import (
	"bridge-generator/internal/errors"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is the declared type category of a parameter or return value.
type Category int

const (
	_ Category = iota

	CategoryNative    // native
	CategoryEnum      // enum
	CategoryBitmask   // bitmask
	CategoryString    // string
	CategoryStructure // structure
	CategoryObject    // object
	CategoryCallback  // callback

	CategoryTotal = int(iota)
)

// ParseCategory resolves a category from its name.
func ParseCategory(name string) (Category, error) {
	for c := Category(1); int(c) < CategoryTotal; c++ {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, errors.Newf(errors.ErrUnsupportedParam, "unknown type category %q", name)
}

// Param describes how a parameter is declared in the C API.
type Param struct {
	Category Category
	Array    bool // pointer to a contiguous run of elements
	Optional bool // may be nil on the Swift side
	Pointer  bool // single element passed by address
	Length   bool // element count of another array parameter
	SizeT    bool // Length is size_t rather than uint32_t
}

// Select picks the strategy for p.
func Select(p Param) (Strategy, error) {
	if p.Length {
		if p.Category != CategoryNative {
			return 0, unsupported(p, "length parameters must be native integers")
		}

		if p.SizeT {
			return StrategySizeLength, nil
		}

		return StrategyLength, nil
	}

	switch p.Category {
	default:
		return 0, unsupported(p, "unknown category")

	case CategoryNative:
		if p.Array {
			return StrategyImplicitArray, nil
		}

		return StrategyImplicit, nil

	case CategoryEnum:
		if p.Optional {
			return 0, unsupported(p, "enums cannot be optional")
		}

		if p.Array {
			return StrategyEnumArray, nil
		}

		return StrategyEnum, nil

	case CategoryBitmask:
		if p.Array || p.Optional {
			return 0, unsupported(p, "bitmasks are passed by value only")
		}

		return StrategyBitmask, nil

	case CategoryString:
		if p.Array {
			return 0, unsupported(p, "string arrays are not supported")
		}

		if p.Optional {
			return StrategyOptionalString, nil
		}

		return StrategyString, nil

	case CategoryStructure:
		switch {
		case p.Array:
			return StrategyStructArray, nil
		case p.Optional:
			return StrategyOptionalStructPointer, nil
		case p.Pointer:
			return StrategyStructPointer, nil
		default:
			return StrategyStruct, nil
		}

	case CategoryObject:
		switch {
		case p.Array:
			return StrategyObjectArray, nil
		case p.Optional:
			return StrategyOptionalObject, nil
		default:
			return StrategyObject, nil
		}

	case CategoryCallback:
		if p.Array || p.Optional {
			return 0, unsupported(p, "callbacks are passed as a single user data pointer")
		}

		return StrategyUserData, nil
	}
}

func unsupported(p Param, reason string) error {
	return errors.Newf(errors.ErrUnsupportedParam, "%s: %s", p.Category, reason).
		WithDetail("param", p)
}
