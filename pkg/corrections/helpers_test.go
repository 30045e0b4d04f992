package corrections

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// testEntry builds an entry from a plain formula.
func testEntry(t *testing.T, formula string, uncorrectedEnergy float64) *core.Entry {
	t.Helper()
	comp, err := core.ParseComposition(formula)
	require.NoError(t, err)
	entry, err := core.NewEntry(comp, uncorrectedEnergy)
	require.NoError(t, err)
	entry.EntryID = formula
	return entry
}

// potcarSymbols resolves the expected title lines for every element of the
// entry from an input set, in the format calculations record them.
func potcarSymbols(t *testing.T, set *config.InputSet, entry *core.Entry) []string {
	t.Helper()
	var out []string
	for _, sym := range entry.Composition.Symbols() {
		pe, ok := set.Potcar[sym]
		require.True(t, ok, "input set %s has no entry for %s", set.Name, sym)
		out = append(out, fmt.Sprintf("PAW_PBE %s 06Sep2000", pe.Symbol))
	}
	return out
}

// mpEntry builds an entry that passes MPRelaxSet pseudopotential validation,
// with the given Hubbard U values.
func mpEntry(t *testing.T, formula string, uncorrectedEnergy float64, hubbards map[string]float64) *core.Entry {
	t.Helper()
	entry := testEntry(t, formula, uncorrectedEnergy)
	entry.Parameters.PotcarSymbols = potcarSymbols(t, config.MPRelaxSet(), entry)
	entry.Parameters.Hubbards = hubbards
	return entry
}

// stubClassifier returns fixed classification results.
type stubClassifier struct {
	oxType  core.OxideType
	nBonds  int
	sulType core.SulfideType
	err     error
}

func (s stubClassifier) OxideType(core.Structure, float64) (core.OxideType, int, error) {
	return s.oxType, s.nBonds, s.err
}

func (s stubClassifier) SulfideType(core.Structure) (core.SulfideType, error) {
	return s.sulType, s.err
}

// fixedCorrection always returns the same value, or rejects every entry.
type fixedCorrection struct {
	name   string
	value  uncert.Value
	reject bool
}

func (f fixedCorrection) Name() string        { return f.name }
func (f fixedCorrection) Description() string { return "Fixed value used in tests." }

func (f fixedCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	if f.reject {
		return uncert.Zero(), incompatible(f, "rejected entry %s", entry.EntryID)
	}
	return f.value, nil
}
