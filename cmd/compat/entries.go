package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/matsci-go/compat/pkg/core"
)

// entryJSON is the on-disk representation of one computed entry.
type entryJSON struct {
	EntryID           string             `json:"entry_id,omitempty"`
	Formula           string             `json:"formula,omitempty"`
	Composition       map[string]float64 `json:"composition,omitempty"`
	UncorrectedEnergy float64            `json:"uncorrected_energy"`
	Correction        float64            `json:"correction,omitempty"`
	Parameters        struct {
		RunType       string             `json:"run_type,omitempty"`
		Hubbards      map[string]float64 `json:"hubbards,omitempty"`
		PotcarSymbols []string           `json:"potcar_symbols,omitempty"`
		PotcarSpec    []struct {
			Titel string `json:"titel"`
			Hash  string `json:"hash,omitempty"`
		} `json:"potcar_spec,omitempty"`
	} `json:"parameters"`
	Data struct {
		OxideType   string `json:"oxide_type,omitempty"`
		SulfideType string `json:"sulfide_type,omitempty"`
	} `json:"data"`
}

func (e *entryJSON) toEntry(index int) (*core.Entry, error) {
	var comp *core.Composition
	var err error
	switch {
	case e.Formula != "":
		comp, err = core.ParseComposition(e.Formula)
	case len(e.Composition) > 0:
		pairs := make([]core.ElementAmount, 0, len(e.Composition))
		for sym, amt := range e.Composition {
			pairs = append(pairs, core.ElementAmount{Symbol: sym, Amount: amt})
		}
		comp, err = core.NewComposition(pairs...)
	default:
		return nil, fmt.Errorf("entry %d: formula or composition required", index)
	}
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", index, err)
	}

	entry, err := core.NewEntry(comp, e.UncorrectedEnergy)
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", index, err)
	}
	entry.EntryID = e.EntryID
	if entry.EntryID == "" {
		entry.EntryID = fmt.Sprintf("entry-%d", index)
	}
	entry.Correction = e.Correction
	entry.Parameters.RunType = e.Parameters.RunType
	entry.Parameters.Hubbards = e.Parameters.Hubbards
	entry.Parameters.PotcarSymbols = e.Parameters.PotcarSymbols
	for _, ps := range e.Parameters.PotcarSpec {
		entry.Parameters.PotcarSpec = append(entry.Parameters.PotcarSpec,
			core.PotcarSpec{Titel: ps.Titel, Hash: ps.Hash})
	}
	entry.Data.OxideType = core.OxideType(e.Data.OxideType)
	entry.Data.SulfideType = core.SulfideType(e.Data.SulfideType)
	return entry, nil
}

func loadEntries(path string) ([]*core.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	var raw []entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}
	entries := make([]*core.Entry, 0, len(raw))
	for i := range raw {
		entry, err := raw[i].toEntry(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// resultJSON is the output representation of an adjusted entry.
type resultJSON struct {
	EntryID               string   `json:"entry_id"`
	Formula               string   `json:"formula"`
	UncorrectedEnergy     float64  `json:"uncorrected_energy"`
	Correction            float64  `json:"correction"`
	CorrectedEnergy       float64  `json:"corrected_energy"`
	CorrectionUncertainty *float64 `json:"correction_uncertainty,omitempty"`
}

func toResult(entry *core.Entry) resultJSON {
	r := resultJSON{
		EntryID:           entry.EntryID,
		Formula:           entry.Composition.ReducedFormula(),
		UncorrectedEnergy: entry.UncorrectedEnergy,
		Correction:        entry.Correction,
		CorrectedEnergy:   entry.Energy(),
	}
	// NaN is not representable in JSON; an absent field stands for it.
	if u := entry.Data.CorrectionUncertainty; !math.IsNaN(u) {
		r.CorrectionUncertainty = &u
	}
	return r
}
