package corrections

import (
	"math"

	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// hydrationEnergy is the reference energy (eV) of binding one water molecule
// in a solvation shell, used for the dissolved-species hydration term.
const hydrationEnergy = 2.46

// AqueousCorrection adjusts compound energetics to agree with experimental
// aqueous-phase reference data. For H2 and H2O it reads the correction
// already applied to the entry, so it must run after every energy-adjusting
// correction.
type AqueousCorrection struct {
	tables    *config.CorrectionTables
	errTables *config.CorrectionTables
}

// NewAqueousCorrection builds the correction from a value table and an
// optional uncertainty table; errTables may be nil.
func NewAqueousCorrection(tables, errTables *config.CorrectionTables) *AqueousCorrection {
	return &AqueousCorrection{tables: tables, errTables: errTables}
}

func (c *AqueousCorrection) Name() string {
	return c.tables.Name + " Aqueous Correction"
}

func (c *AqueousCorrection) Description() string {
	return "Corrects compound energies to obtain the right phase diagram in aqueous conditions."
}

func (c *AqueousCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	comp := entry.Composition
	rform := comp.ReducedFormula()

	var errs map[string]float64
	if c.errTables != nil {
		errs = c.errTables.AqueousCompoundEnergies
	}

	corr := uncert.Zero()
	if e, ok := c.tables.AqueousCompoundEnergies[rform]; ok {
		v := e * comp.NumAtoms()
		if rform == "H2" || rform == "H2O" {
			v -= entry.UncorrectedEnergy + entry.Correction
		}
		corr = corr.Add(uncert.New(v, errs[rform]*comp.NumAtoms()))
	}
	if rform != "H2O" {
		// Hydration of dissolved species: half the water binding energy per
		// bound water molecule, limited by whichever of H2 or O runs out.
		nH2O := math.Min(comp.Amount("H")/2, comp.Amount("O"))
		corr = corr.Add(uncert.New(0.5*hydrationEnergy*nH2O, 0))
	}
	return corr, nil
}
