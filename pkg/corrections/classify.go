package corrections

import (
	"github.com/matsci-go/compat/internal/logging"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// oxideBondCutoff is the relative O-O bond-length threshold handed to the
// structural classifier.
const oxideBondCutoff = 1.05

// Reduced formulas recognized by the no-structure fallback, checked in
// priority order. Formula membership is a known approximation: without a
// structure or a precomputed tag there is no way to tell, say, a true
// superoxide from an accidental 1:2 stoichiometry, and the lists only cover
// the common compounds.
var (
	commonPeroxides = map[string]bool{
		"Li2O2": true, "Na2O2": true, "K2O2": true, "Cs2O2": true, "Rb2O2": true,
		"BeO2": true, "MgO2": true, "CaO2": true, "SrO2": true, "BaO2": true,
	}
	commonSuperoxides = map[string]bool{
		"LiO2": true, "NaO2": true, "KO2": true, "RbO2": true, "CsO2": true,
	}
	knownOzonides = map[string]bool{
		"LiO3": true, "NaO3": true, "KO3": true, "NaO5": true,
	}
)

// tableValue builds an uncertainty-carrying value for key from a value table
// and an optional error table. Missing keys yield zeros; errTable may be nil.
func tableValue(table, errTable map[string]float64, key string) uncert.Value {
	return uncert.New(table[key], errTable[key])
}

// sulfideSubtype resolves the sulfur-anion subtype of an entry: a precomputed
// tag wins, then structural classification, then the generic sulfide subtype.
func sulfideSubtype(entry *core.Entry, classifier core.StructureClassifier) core.SulfideType {
	if entry.Data.SulfideType != "" {
		return entry.Data.SulfideType
	}
	if classifier != nil && entry.Structure != nil {
		if st, err := classifier.SulfideType(entry.Structure); err == nil && st != "" {
			return st
		}
	}
	return core.SulfideTypeSulfide
}

// sulfideTerm computes the sulfide contribution for an entry against the
// given value/error tables. Subtypes with no configured value contribute
// nothing.
func sulfideTerm(entry *core.Entry, table, errTable map[string]float64, classifier core.StructureClassifier) uncert.Value {
	subtype := string(sulfideSubtype(entry, classifier))
	if _, ok := table[subtype]; !ok {
		return uncert.Zero()
	}
	return tableValue(table, errTable, subtype).Scale(entry.Composition.Amount("S"))
}

// oxideTerm computes the oxygen-anion contribution for an entry against the
// given value/error tables.
//
// Resolution order: precomputed tag, then structural classification (whose
// bond count is the multiplier for non-hydroxide subtypes), then
// reduced-formula matching against the known peroxide/superoxide/ozonide
// lists, then the generic oxide value for multi-element compositions. When
// peroxide handling is disabled the generic oxide value applies
// unconditionally. Hydroxides always receive the generic oxide value per
// oxygen atom.
func oxideTerm(entry *core.Entry, table, errTable map[string]float64, correctPeroxide bool, classifier core.StructureClassifier, name string) uncert.Value {
	comp := entry.Composition
	nO := comp.Amount("O")

	if !correctPeroxide {
		return tableValue(table, errTable, "oxide").Scale(nO)
	}

	if tag := entry.Data.OxideType; tag != "" {
		corr := uncert.Zero()
		if _, ok := table[string(tag)]; ok {
			corr = corr.Add(tableValue(table, errTable, string(tag)).Scale(nO))
		}
		if tag == core.OxideTypeHydroxide {
			corr = corr.Add(tableValue(table, errTable, "oxide").Scale(nO))
		}
		return corr
	}

	if classifier != nil && entry.Structure != nil {
		oxType, nBonds, err := classifier.OxideType(entry.Structure, oxideBondCutoff)
		if err == nil {
			if _, ok := table[string(oxType)]; ok {
				return tableValue(table, errTable, string(oxType)).Scale(float64(nBonds))
			}
			if oxType == core.OxideTypeHydroxide {
				return tableValue(table, errTable, "oxide").Scale(nO)
			}
			return uncert.Zero()
		}
		logging.Log.Info("oxide classification failed; falling back to formula matching",
			"correction", name, "error", err.Error())
	}

	rform := comp.ReducedFormula()
	logging.Log.Info("no structure or oxide type tag; peroxide and superoxide detection relies on formula matching, which is less reliable",
		"correction", name, "formula", rform)
	switch {
	case commonPeroxides[rform]:
		return tableValue(table, errTable, "peroxide").Scale(nO)
	case commonSuperoxides[rform]:
		return tableValue(table, errTable, "superoxide").Scale(nO)
	case knownOzonides[rform]:
		return tableValue(table, errTable, "ozonide").Scale(nO)
	case comp.NumElements() > 1:
		return tableValue(table, errTable, "oxide").Scale(nO)
	}
	return uncert.Zero()
}
