package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-generator/internal/diagnostic"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("closure_dropped", "override drops the closure", "string", "closure")
	assert.False(t, d.HasErrors())

	d.AddError("empty_c_value", "c_value is empty", "enum", "c_value")
	d.AddError("unknown_strategy", `unknown strategy "blob"`, "", "")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		`[enum] c_value: [empty_c_value] c_value is empty; [unknown_strategy] unknown strategy "blob"`)

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, diagnostic.SeverityError, all[0].Severity)
	assert.Equal(t, diagnostic.SeverityWarning, all[2].Severity)
	assert.Equal(t, "[string] closure: [closure_dropped] override drops the closure", all[2].String())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warning", diagnostic.SeverityWarning.String())
	assert.Equal(t, "error", diagnostic.SeverityError.String())
	assert.Equal(t, "unknown", diagnostic.Severity(9).String())
}
