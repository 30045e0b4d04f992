package corrections

import (
	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// AnionCorrection adjusts the energy of compounds containing sulfur or
// oxygen anions, distinguishing oxide subtypes (peroxide, superoxide,
// ozonide, hydroxide) when the information to do so is available.
type AnionCorrection struct {
	tables          *config.CorrectionTables
	correctPeroxide bool
	classifier      core.StructureClassifier
}

func NewAnionCorrection(tables *config.CorrectionTables, correctPeroxide bool, classifier core.StructureClassifier) *AnionCorrection {
	return &AnionCorrection{tables: tables, correctPeroxide: correctPeroxide, classifier: classifier}
}

func (c *AnionCorrection) Name() string {
	return c.tables.Name + " Anion Correction"
}

func (c *AnionCorrection) Description() string {
	return "Corrects energies of compounds containing sulfide or oxide anions."
}

func (c *AnionCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	comp := entry.Composition
	if comp.NumElements() == 1 {
		return uncert.Zero(), nil
	}

	corr := uncert.Zero()
	if comp.Contains("S") {
		corr = corr.Add(sulfideTerm(entry, c.tables.SulfideCorrections, nil, c.classifier))
	}
	if comp.Contains("O") {
		corr = corr.Add(oxideTerm(entry, c.tables.OxideCorrections, nil, c.correctPeroxide, c.classifier, c.Name()))
	}
	return corr, nil
}
