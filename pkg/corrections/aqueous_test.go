package corrections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsci-go/compat/pkg/config"
)

func TestAqueousCorrectionWater(t *testing.T) {
	corr := NewAqueousCorrection(config.MPTables(), nil)

	// H2O depends on the correction already applied to the entry, and the
	// hydration term is skipped for water itself.
	entry := testEntry(t, "H2O", -14.0)
	entry.Correction = 0.5
	v, err := corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -4.972*3-(-14.0)-0.5, v.Nominal, 1e-9)
}

func TestAqueousCorrectionHydrogen(t *testing.T) {
	corr := NewAqueousCorrection(config.MPTables(), nil)

	entry := testEntry(t, "H2", -6.8)
	entry.Correction = -0.1
	v, err := corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -3.9094*2-(-6.8)-(-0.1), v.Nominal, 1e-9)
}

func TestAqueousCorrectionHydrationTerm(t *testing.T) {
	corr := NewAqueousCorrection(config.MPTables(), nil)

	// FeO.H2O: one bound water, limited by min(H/2, O).
	v, err := corr.GetCorrection(testEntry(t, "FeO2H2", -20))
	require.NoError(t, err)
	assert.InDelta(t, 0.5*2.46*1, v.Nominal, 1e-9)

	// Oxygen-rich: the hydrogen count limits.
	v, err = corr.GetCorrection(testEntry(t, "FeO4H2", -20))
	require.NoError(t, err)
	assert.InDelta(t, 0.5*2.46*1, v.Nominal, 1e-9)

	// No water content, no term.
	v, err = corr.GetCorrection(testEntry(t, "Fe2O3", -20))
	require.NoError(t, err)
	assert.Zero(t, v.Nominal)
}
