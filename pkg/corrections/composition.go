package corrections

import (
	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// Anion and gas species with flat per-atom corrections in 2020-style
// schemes, beyond the classified oxide and sulfide subtypes.
var (
	extraAnions = []string{"Br", "I", "Se", "Si", "Sb", "Te"}
	extraGases  = []string{"H", "N", "F", "Cl"}
)

// CompositionCorrection is the 2020-style per-composition correction. It
// covers the classified oxide and sulfide subtypes like AnionCorrection,
// plus flat per-atom terms for further anion and gas species, and carries a
// parallel uncertainty table.
type CompositionCorrection struct {
	tables          *config.CorrectionTables
	errTables       *config.CorrectionTables
	correctPeroxide bool
	classifier      core.StructureClassifier
}

// NewCompositionCorrection builds the correction from a value table and an
// optional uncertainty table of the same shape; errTables may be nil, in
// which case every term carries zero uncertainty.
func NewCompositionCorrection(tables, errTables *config.CorrectionTables, correctPeroxide bool, classifier core.StructureClassifier) *CompositionCorrection {
	return &CompositionCorrection{tables: tables, errTables: errTables, correctPeroxide: correctPeroxide, classifier: classifier}
}

func (c *CompositionCorrection) Name() string {
	return c.tables.Name + " Composition Correction"
}

func (c *CompositionCorrection) Description() string {
	return "Corrects energies of compounds by anion and gas species present."
}

func (c *CompositionCorrection) errTable() map[string]float64 {
	if c.errTables == nil {
		return nil
	}
	return c.errTables.CompositionCorrections
}

func (c *CompositionCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	comp := entry.Composition
	if comp.NumElements() == 1 {
		return uncert.Zero(), nil
	}

	table := c.tables.CompositionCorrections
	errTable := c.errTable()

	corr := uncert.Zero()
	if comp.Contains("S") {
		corr = corr.Add(sulfideTerm(entry, table, errTable, c.classifier))
	}
	if comp.Contains("O") {
		corr = corr.Add(oxideTerm(entry, table, errTable, c.correctPeroxide, c.classifier, c.Name()))
	}

	for _, sym := range extraAnions {
		if _, ok := table[sym]; ok && comp.Contains(sym) {
			corr = corr.Add(tableValue(table, errTable, sym).Scale(comp.Amount(sym)))
		}
	}
	if c.tables.Name != "MIT" {
		for _, sym := range extraGases {
			if _, ok := table[sym]; ok && comp.Contains(sym) {
				corr = corr.Add(tableValue(table, errTable, sym).Scale(comp.Amount(sym)))
			}
		}
	}
	return corr, nil
}
