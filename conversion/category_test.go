package conversion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-generator/conversion"
	"bridge-generator/internal/errors"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		param conversion.Param
		want  conversion.Strategy
	}{
		{"native", conversion.Param{Category: conversion.CategoryNative}, conversion.StrategyImplicit},
		{"native array", conversion.Param{Category: conversion.CategoryNative, Array: true}, conversion.StrategyImplicitArray},
		{"uint32 length", conversion.Param{Category: conversion.CategoryNative, Length: true}, conversion.StrategyLength},
		{"size_t length", conversion.Param{Category: conversion.CategoryNative, Length: true, SizeT: true}, conversion.StrategySizeLength},
		{"enum", conversion.Param{Category: conversion.CategoryEnum}, conversion.StrategyEnum},
		{"enum array", conversion.Param{Category: conversion.CategoryEnum, Array: true}, conversion.StrategyEnumArray},
		{"bitmask", conversion.Param{Category: conversion.CategoryBitmask}, conversion.StrategyBitmask},
		{"string", conversion.Param{Category: conversion.CategoryString}, conversion.StrategyString},
		{"optional string", conversion.Param{Category: conversion.CategoryString, Optional: true}, conversion.StrategyOptionalString},
		{"struct", conversion.Param{Category: conversion.CategoryStructure}, conversion.StrategyStruct},
		{"struct pointer", conversion.Param{Category: conversion.CategoryStructure, Pointer: true}, conversion.StrategyStructPointer},
		{"optional struct", conversion.Param{Category: conversion.CategoryStructure, Pointer: true, Optional: true}, conversion.StrategyOptionalStructPointer},
		{"struct array", conversion.Param{Category: conversion.CategoryStructure, Array: true}, conversion.StrategyStructArray},
		{"object", conversion.Param{Category: conversion.CategoryObject}, conversion.StrategyObject},
		{"optional object", conversion.Param{Category: conversion.CategoryObject, Optional: true}, conversion.StrategyOptionalObject},
		{"object array", conversion.Param{Category: conversion.CategoryObject, Array: true}, conversion.StrategyObjectArray},
		{"callback", conversion.Param{Category: conversion.CategoryCallback}, conversion.StrategyUserData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conversion.Select(tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectUnsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		param conversion.Param
	}{
		{"zero category", conversion.Param{}},
		{"bitmask array", conversion.Param{Category: conversion.CategoryBitmask, Array: true}},
		{"optional enum", conversion.Param{Category: conversion.CategoryEnum, Optional: true}},
		{"string array", conversion.Param{Category: conversion.CategoryString, Array: true}},
		{"enum length", conversion.Param{Category: conversion.CategoryEnum, Length: true}},
		{"callback array", conversion.Param{Category: conversion.CategoryCallback, Array: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := conversion.Select(tt.param)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedParam), "got %v", err)
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, err := conversion.ParseCategory("structure")
	require.NoError(t, err)
	assert.Equal(t, conversion.CategoryStructure, c)

	_, err = conversion.ParseCategory("union")
	assert.Error(t, err)
}
