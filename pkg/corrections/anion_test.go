package corrections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
)

func TestAnionCorrectionFormulaFallback(t *testing.T) {
	tables := config.MPTables()
	tests := []struct {
		name            string
		formula         string
		correctPeroxide bool
		want            float64
	}{
		{
			name:            "Li2O2 matches the peroxide list",
			formula:         "Li2O2",
			correctPeroxide: true,
			want:            -0.46544 * 2,
		},
		{
			name:            "peroxide detection disabled applies the oxide value",
			formula:         "Li2O2",
			correctPeroxide: false,
			want:            -0.70229 * 2,
		},
		{
			name:            "KO2 matches the superoxide list",
			formula:         "KO2",
			correctPeroxide: true,
			want:            -0.16074 * 2,
		},
		{
			name:            "NaO3 matches the ozonide list",
			formula:         "NaO3",
			correctPeroxide: true,
			want:            -0.08233 * 3,
		},
		{
			name:            "plain oxide",
			formula:         "Fe2O3",
			correctPeroxide: true,
			want:            -0.70229 * 3,
		},
		{
			name:            "single element gets no correction",
			formula:         "O2",
			correctPeroxide: true,
			want:            0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corr := NewAnionCorrection(tables, tt.correctPeroxide, nil)
			v, err := corr.GetCorrection(testEntry(t, tt.formula, -10))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v.Nominal, 1e-9)
			assert.Zero(t, v.StdDev)
		})
	}
}

func TestAnionCorrectionOxideTag(t *testing.T) {
	tables := config.MPTables()
	corr := NewAnionCorrection(tables, true, nil)

	entry := testEntry(t, "LiO2", -10)
	entry.Data.OxideType = core.OxideTypeSuperoxide
	v, err := corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -0.16074*2, v.Nominal, 1e-9)

	// A hydroxide tag falls through to the oxide value per oxygen because the
	// tables carry no hydroxide key.
	entry = testEntry(t, "CaO2H2", -10)
	entry.Data.OxideType = core.OxideTypeHydroxide
	v, err = corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -0.70229*2, v.Nominal, 1e-9)
}

func TestAnionCorrectionClassifier(t *testing.T) {
	tables := config.MPTables()

	// The classifier's bond count, not the oxygen count, is the multiplier.
	corr := NewAnionCorrection(tables, true, stubClassifier{oxType: core.OxideTypePeroxide, nBonds: 1})
	entry := testEntry(t, "Li4O4", -10)
	entry.Structure = struct{}{}
	v, err := corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -0.46544*1, v.Nominal, 1e-9)

	// Hydroxides multiply the oxide value by the oxygen count instead.
	corr = NewAnionCorrection(tables, true, stubClassifier{oxType: core.OxideTypeHydroxide})
	entry = testEntry(t, "CaO2H2", -10)
	entry.Structure = struct{}{}
	v, err = corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -0.70229*2, v.Nominal, 1e-9)

	// A failing classifier falls back to formula matching.
	corr = NewAnionCorrection(tables, true, stubClassifier{err: assert.AnError})
	entry = testEntry(t, "Li2O2", -10)
	entry.Structure = struct{}{}
	v, err = corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.InDelta(t, -0.46544*2, v.Nominal, 1e-9)
}

func TestAnionCorrectionSulfides(t *testing.T) {
	tables := config.MPTables()
	corr := NewAnionCorrection(tables, true, nil)

	v, err := corr.GetCorrection(testEntry(t, "FeS2", -10))
	require.NoError(t, err)
	assert.InDelta(t, -0.285*2, v.Nominal, 1e-9)

	// A precomputed subtype with no table value contributes nothing.
	entry := testEntry(t, "FeS2", -10)
	entry.Data.SulfideType = core.SulfideTypePolysulfide
	v, err = corr.GetCorrection(entry)
	require.NoError(t, err)
	assert.Zero(t, v.Nominal)
}
