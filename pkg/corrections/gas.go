package corrections

import (
	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// GasCorrection replaces the computed energy of known gaseous compounds with
// a reference value from the compound-energy table.
type GasCorrection struct {
	tables *config.CorrectionTables
}

func NewGasCorrection(tables *config.CorrectionTables) *GasCorrection {
	return &GasCorrection{tables: tables}
}

func (c *GasCorrection) Name() string {
	return c.tables.Name + " Gas Correction"
}

func (c *GasCorrection) Description() string {
	return "Replaces energies of gaseous compounds with tabulated reference values."
}

func (c *GasCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	comp := entry.Composition
	if comp.NumElements() == 1 {
		return uncert.Zero(), nil
	}
	rform := comp.ReducedFormula()
	e, ok := c.tables.Advanced.CompoundEnergies[rform]
	if !ok {
		return uncert.Zero(), nil
	}
	return uncert.New(e*comp.NumAtoms()-entry.UncorrectedEnergy, 0), nil
}
