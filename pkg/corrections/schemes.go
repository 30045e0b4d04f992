package corrections

import (
	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
)

// SchemeOptions configures the preset compatibility schemes.
type SchemeOptions struct {
	// CompatType selects GGA-only or GGA/GGA+U mixing. Defaults to
	// CompatTypeAdvanced.
	CompatType CompatType
	// DisablePeroxide turns off peroxide/superoxide/ozonide detection; every
	// oxygen atom then receives the generic oxide correction.
	DisablePeroxide bool
	// CheckPotcarHash validates pseudopotentials by content hash instead of
	// symbol.
	CheckPotcarHash bool
	// Classifier derives oxide and sulfide subtypes from entry structures.
	// Optional; without it classification falls back to tags and formulas.
	Classifier core.StructureClassifier
}

func (o SchemeOptions) compatType() CompatType {
	if o.CompatType == "" {
		return CompatTypeAdvanced
	}
	return o.CompatType
}

// NewMaterialsProjectCompatibility builds the legacy Materials Project
// GGA/GGA+U mixing scheme.
func NewMaterialsProjectCompatibility(opts SchemeOptions) (*Compatibility, error) {
	tables := config.MPTables()
	inputSet := config.MPRelaxSet()
	potcar, err := NewPotcarCorrection(inputSet, opts.CheckPotcarHash)
	if err != nil {
		return nil, err
	}
	ucorr, err := NewUCorrection(tables, nil, inputSet, opts.compatType())
	if err != nil {
		return nil, err
	}
	return NewCompatibility("MaterialsProjectCompatibility",
		potcar,
		NewGasCorrection(tables),
		NewAnionCorrection(tables, !opts.DisablePeroxide, opts.Classifier),
		ucorr,
	), nil
}

// NewMaterialsProject2020Compatibility builds the 2020 Materials Project
// scheme, which carries per-correction uncertainty data.
func NewMaterialsProject2020Compatibility(opts SchemeOptions) (*Compatibility, error) {
	tables := config.MP2020Tables()
	errTables := config.MP2020Uncertainties()
	inputSet := config.MPRelaxSet()
	potcar, err := NewPotcarCorrection(inputSet, opts.CheckPotcarHash)
	if err != nil {
		return nil, err
	}
	ucorr, err := NewUCorrection(tables, errTables, inputSet, opts.compatType())
	if err != nil {
		return nil, err
	}
	return NewCompatibility("MaterialsProject2020Compatibility",
		potcar,
		NewCompositionCorrection(tables, errTables, !opts.DisablePeroxide, opts.Classifier),
		ucorr,
	), nil
}

// NewMITCompatibility builds the MIT GGA/GGA+U mixing scheme.
func NewMITCompatibility(opts SchemeOptions) (*Compatibility, error) {
	tables := config.MITTables()
	inputSet := config.MITRelaxSet()
	potcar, err := NewPotcarCorrection(inputSet, opts.CheckPotcarHash)
	if err != nil {
		return nil, err
	}
	ucorr, err := NewUCorrection(tables, nil, inputSet, opts.compatType())
	if err != nil {
		return nil, err
	}
	return NewCompatibility("MITCompatibility",
		potcar,
		NewGasCorrection(tables),
		NewAnionCorrection(tables, !opts.DisablePeroxide, opts.Classifier),
		ucorr,
	), nil
}

// NewMITAqueousCompatibility builds the MIT scheme extended with the aqueous
// correction for Pourbaix-style analyses.
func NewMITAqueousCompatibility(opts SchemeOptions) (*Compatibility, error) {
	tables := config.MITTables()
	inputSet := config.MITRelaxSet()
	potcar, err := NewPotcarCorrection(inputSet, opts.CheckPotcarHash)
	if err != nil {
		return nil, err
	}
	ucorr, err := NewUCorrection(tables, nil, inputSet, opts.compatType())
	if err != nil {
		return nil, err
	}
	return NewCompatibility("MITAqueousCompatibility",
		potcar,
		NewGasCorrection(tables),
		NewAnionCorrection(tables, !opts.DisablePeroxide, opts.Classifier),
		ucorr,
		NewAqueousCorrection(tables, nil),
	), nil
}

// NewMaterialsProjectAqueousCompatibility builds the legacy Materials Project
// scheme extended with the aqueous correction.
func NewMaterialsProjectAqueousCompatibility(opts SchemeOptions) (*Compatibility, error) {
	tables := config.MPTables()
	inputSet := config.MPRelaxSet()
	potcar, err := NewPotcarCorrection(inputSet, opts.CheckPotcarHash)
	if err != nil {
		return nil, err
	}
	ucorr, err := NewUCorrection(tables, nil, inputSet, opts.compatType())
	if err != nil {
		return nil, err
	}
	return NewCompatibility("MaterialsProjectAqueousCompatibility",
		potcar,
		NewGasCorrection(tables),
		NewAnionCorrection(tables, !opts.DisablePeroxide, opts.Classifier),
		ucorr,
		NewAqueousCorrection(tables, nil),
	), nil
}

// NewMaterialsProjectAqueous2020Compatibility builds the 2020 Materials
// Project scheme extended with the aqueous correction. Unlike the plain 2020
// scheme it carries no uncertainty tables.
func NewMaterialsProjectAqueous2020Compatibility(opts SchemeOptions) (*Compatibility, error) {
	tables := config.MP2020Tables()
	inputSet := config.MPRelaxSet()
	potcar, err := NewPotcarCorrection(inputSet, opts.CheckPotcarHash)
	if err != nil {
		return nil, err
	}
	ucorr, err := NewUCorrection(tables, nil, inputSet, opts.compatType())
	if err != nil {
		return nil, err
	}
	return NewCompatibility("MaterialsProjectAqueous2020Compatibility",
		potcar,
		NewCompositionCorrection(tables, nil, !opts.DisablePeroxide, opts.Classifier),
		ucorr,
		NewAqueousCorrection(tables, nil),
	), nil
}
