package corrections

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// CompatType selects which calculations a UCorrection admits.
type CompatType string

const (
	// CompatTypeGGA admits plain GGA calculations only and applies no
	// correction.
	CompatTypeGGA CompatType = "GGA"
	// CompatTypeAdvanced mixes GGA and GGA+U calculations, requiring entry U
	// values to match the input set and correcting the +U energies.
	CompatTypeAdvanced CompatType = "Advanced"
)

// uTolerance is the absolute tolerance when comparing a declared Hubbard-U
// value against the expected one.
const uTolerance = 1e-3

// UCorrection implements the GGA/GGA+U mixing scheme. Entries must declare
// the Hubbard U value of every element they were computed with; a value that
// differs from the reference input set makes the entry incompatible.
type UCorrection struct {
	tables     *config.CorrectionTables
	errTables  *config.CorrectionTables
	compatType CompatType

	uSettings    map[string]map[string]float64
	uCorrections map[string]map[string]float64
}

// NewUCorrection builds the correction for one compatibility type. Under
// CompatTypeGGA the U-setting and U-correction tables are empty, so any entry
// declaring a nonzero U is rejected and no energy is adjusted. errTables may
// be nil.
func NewUCorrection(tables, errTables *config.CorrectionTables, inputSet *config.InputSet, compatType CompatType) (*UCorrection, error) {
	c := &UCorrection{tables: tables, errTables: errTables, compatType: compatType}
	switch compatType {
	case CompatTypeGGA:
	case CompatTypeAdvanced:
		if inputSet == nil {
			return nil, fmt.Errorf("advanced U correction requires an input set")
		}
		c.uSettings = inputSet.HubbardU
		c.uCorrections = tables.Advanced.UCorrections
	default:
		return nil, fmt.Errorf("invalid compat_type %q: must be GGA or Advanced", compatType)
	}
	return c, nil
}

func (c *UCorrection) Name() string {
	return fmt.Sprintf("%s %s Correction", c.tables.Name, c.compatType)
}

func (c *UCorrection) Description() string {
	return "Mixes GGA and GGA+U calculations, checking Hubbard U values against the input set."
}

func (c *UCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	if entry.Parameters.RunType == "HF" {
		return uncert.Zero(), incompatible(c, "entry %s is a Hartree-Fock calculation", entry.EntryID)
	}

	row := entry.Composition.MostElectronegative()
	ucorr := c.uCorrections[row]
	usettings := c.uSettings[row]
	var uerrs map[string]float64
	if c.errTables != nil {
		uerrs = c.errTables.Advanced.UCorrections[row]
	}

	calcU := entry.Parameters.Hubbards

	corr := uncert.Zero()
	for _, sym := range entry.Composition.Symbols() {
		expected := usettings[sym]
		actual := calcU[sym]
		if !scalar.EqualWithinAbs(expected, actual, uTolerance) {
			return uncert.Zero(), incompatible(c, "entry %s declares U=%g for %s, expected %g", entry.EntryID, actual, sym, expected)
		}
		if v, ok := ucorr[sym]; ok {
			corr = corr.Add(uncert.New(v, uerrs[sym]).Scale(entry.Composition.Amount(sym)))
		}
	}
	return corr, nil
}
