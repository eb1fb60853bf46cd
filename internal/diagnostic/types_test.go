package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("empty_segment", "path has an empty segment", "odata.User", "TestProp2")
	assert.True(t, d.IsValid())

	d.AddError("unknown_type", `type "odata.Missing" is not in the catalog`, "odata.Missing", "")
	d.AddInfo("registered", "3 descriptors", "odata.User", "")

	require.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Equal(t, `[odata.Missing]: [unknown_type] type "odata.Missing" is not in the catalog`, d.Error().Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
	assert.Equal(t, "[odata.User] TestProp2: [empty_segment] path has an empty segment", all[1].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[x] first; [y] second", a.Error().Error())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}

func newFailing() Diagnostics {
	var d Diagnostics
	d.AddError("unknown_type", "missing", "odata.Missing", "")

	return d
}

func TestDiagnostics_ReturnedValue(t *testing.T) {
	assert.True(t, newFailing().HasErrors())
	assert.False(t, newFailing().IsValid())
	assert.Len(t, newFailing().All(), 1)
	assert.EqualError(t, newFailing().Error(), "[odata.Missing]: [unknown_type] missing")
}
