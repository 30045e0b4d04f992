package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AdvancedTables holds the lookup data of the GGA/GGA+U mixing scheme.
type AdvancedTables struct {
	// CompoundEnergies maps reduced formulas to fitted per-atom energies.
	CompoundEnergies map[string]float64 `yaml:"CompoundEnergies"`
	// UCorrections maps the most electronegative element of a composition to
	// the per-element correction row applied under that anion.
	UCorrections map[string]map[string]float64 `yaml:"UCorrections"`
}

// CorrectionTables is one named correction scheme's immutable lookup data.
// The same shape serves both value tables and their uncertainty counterparts
// (where every number is a standard deviation instead of a correction).
//
// Tables are parsed with yaml.v3 directly: formula and element keys are
// case-sensitive, which rules out config loaders that normalize map keys.
type CorrectionTables struct {
	// Name identifies the scheme ("MP", "MIT", "MP2020", ...). Some
	// corrections branch on it.
	Name string `yaml:"Name"`
	// Advanced holds compound energies and Hubbard-U correction rows.
	Advanced AdvancedTables `yaml:"Advanced"`
	// OxideCorrections maps oxygen-anion subtypes to per-atom (or per-bond)
	// corrections.
	OxideCorrections map[string]float64 `yaml:"OxideCorrections"`
	// SulfideCorrections maps sulfur-anion subtypes to per-atom corrections.
	SulfideCorrections map[string]float64 `yaml:"SulfideCorrections"`
	// CompositionCorrections maps anion subtypes and element symbols to
	// per-atom corrections (2020-style schemes).
	CompositionCorrections map[string]float64 `yaml:"CompositionCorrections"`
	// AqueousCompoundEnergies maps reduced formulas to fitted per-atom
	// energies for aqueous-phase compounds.
	AqueousCompoundEnergies map[string]float64 `yaml:"AqueousCompoundEnergies"`
}

// Validate checks the invariants construction relies on.
func (t *CorrectionTables) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("correction tables must carry a Name")
	}
	return nil
}

// ParseTables decodes correction tables from YAML.
func ParseTables(data []byte) (*CorrectionTables, error) {
	var t CorrectionTables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing correction tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
