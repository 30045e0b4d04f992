package core

import (
	"errors"
)

// PotcarSpec is one structured pseudopotential record of a calculation.
// Titel is the full title line (e.g. "PAW_PBE Fe_pv 06Sep2000"); Hash
// identifies the exact pseudopotential data file.
type PotcarSpec struct {
	Titel string
	Hash  string
}

// Parameters holds the calculation settings attached to an Entry. All fields
// are optional; corrections that need a field reject entries that lack it.
type Parameters struct {
	// RunType tags the calculation method, e.g. "GGA", "GGA+U", or "HF".
	// Empty is treated as "GGA".
	RunType string
	// Hubbards maps element symbols to the U value used in the calculation.
	// Nil or empty means a plain GGA run.
	Hubbards map[string]float64
	// PotcarSpec lists the structured pseudopotential records of the run.
	PotcarSpec []PotcarSpec
	// PotcarSymbols lists plain pseudopotential title lines, used when no
	// structured spec is available.
	PotcarSymbols []string
}

// EntryData carries auxiliary classification tags supplied by external
// structural analysis, plus the correction uncertainty written back after
// processing.
type EntryData struct {
	// OxideType is a precomputed oxygen-anion subtype, if known.
	OxideType OxideType
	// SulfideType is a precomputed sulfur-anion subtype, if known.
	SulfideType SulfideType
	// CorrectionUncertainty is the standard deviation of the entry's applied
	// correction. NaN signals that a correction was applied but no error data
	// exists for it.
	CorrectionUncertainty float64
}

// Entry is one computed calculation result to be normalized. The engine never
// constructs entries from raw calculation output; callers assemble them from
// whatever parsing layer they use.
type Entry struct {
	// EntryID identifies the entry in logs and diagnostics. Optional.
	EntryID string
	// Composition is the entry's chemical composition. Never empty.
	Composition *Composition
	// UncorrectedEnergy is the raw computed total energy.
	UncorrectedEnergy float64
	// Correction is the accumulated additive energy correction.
	Correction float64
	// Parameters are the calculation settings.
	Parameters Parameters
	// Data holds auxiliary classification tags and correction outputs.
	Data EntryData
	// Structure optionally carries the atomic structure for classification.
	Structure Structure
}

// NewEntry returns an entry for the given composition and uncorrected energy.
func NewEntry(comp *Composition, uncorrectedEnergy float64) (*Entry, error) {
	if comp == nil || comp.NumElements() == 0 {
		return nil, errors.New("entry requires a non-empty composition")
	}
	return &Entry{Composition: comp, UncorrectedEnergy: uncorrectedEnergy}, nil
}

// Energy returns the corrected energy: uncorrected energy plus the applied
// correction.
func (e *Entry) Energy() float64 {
	return e.UncorrectedEnergy + e.Correction
}

// Clone returns a deep copy of the entry. The structure handle is shared:
// structures are read-only inputs to classification.
func (e *Entry) Clone() *Entry {
	cp := *e
	if e.Composition != nil {
		cp.Composition = e.Composition.Clone()
	}
	if e.Parameters.Hubbards != nil {
		cp.Parameters.Hubbards = make(map[string]float64, len(e.Parameters.Hubbards))
		for k, v := range e.Parameters.Hubbards {
			cp.Parameters.Hubbards[k] = v
		}
	}
	if e.Parameters.PotcarSpec != nil {
		cp.Parameters.PotcarSpec = make([]PotcarSpec, len(e.Parameters.PotcarSpec))
		copy(cp.Parameters.PotcarSpec, e.Parameters.PotcarSpec)
	}
	if e.Parameters.PotcarSymbols != nil {
		cp.Parameters.PotcarSymbols = make([]string, len(e.Parameters.PotcarSymbols))
		copy(cp.Parameters.PotcarSymbols, e.Parameters.PotcarSymbols)
	}
	return &cp
}
