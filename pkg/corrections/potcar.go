package corrections

import (
	"fmt"
	"strings"

	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// PotcarCorrection validates that an entry was computed with the
// pseudopotentials an input set prescribes. It never adjusts the energy; a
// mismatch makes the entry incompatible.
type PotcarCorrection struct {
	inputSet  *config.InputSet
	checkHash bool
}

// NewPotcarCorrection builds a validator against the given input set. With
// checkHash set, entries are matched by pseudopotential content hash instead
// of symbol, which also catches modified pseudopotential files.
func NewPotcarCorrection(inputSet *config.InputSet, checkHash bool) (*PotcarCorrection, error) {
	if inputSet == nil {
		return nil, fmt.Errorf("potcar correction requires an input set")
	}
	if checkHash {
		for sym, pe := range inputSet.Potcar {
			if pe.Hash == "" {
				return nil, fmt.Errorf("input set %s has no pseudopotential hash for %s; cannot validate by hash", inputSet.Name, sym)
			}
		}
	}
	return &PotcarCorrection{inputSet: inputSet, checkHash: checkHash}, nil
}

func (c *PotcarCorrection) Name() string {
	return fmt.Sprintf("%s Potcar Correction", c.inputSet.Name)
}

func (c *PotcarCorrection) Description() string {
	return "Checks that the pseudopotentials used match the expected input set."
}

// GetCorrection returns zero when the entry's recorded pseudopotentials match
// the input set for every element in the composition, and an
// IncompatibleError otherwise.
func (c *PotcarCorrection) GetCorrection(entry *core.Entry) (uncert.Value, error) {
	expected := make(map[string]bool)
	for _, sym := range entry.Composition.Symbols() {
		pe, ok := c.inputSet.Potcar[sym]
		if !ok {
			return uncert.Zero(), incompatible(c, "input set %s has no pseudopotential for element %s", c.inputSet.Name, sym)
		}
		if c.checkHash {
			expected[pe.Hash] = true
		} else {
			expected[pe.Symbol] = true
		}
	}

	used := make(map[string]bool)
	if c.checkHash {
		if len(entry.Parameters.PotcarSpec) == 0 {
			return uncert.Zero(), incompatible(c, "entry has no pseudopotential hashes; cannot validate by hash")
		}
		for _, spec := range entry.Parameters.PotcarSpec {
			if spec.Hash == "" {
				return uncert.Zero(), incompatible(c, "entry pseudopotential spec %q has no hash", spec.Titel)
			}
			used[spec.Hash] = true
		}
	} else {
		switch {
		case len(entry.Parameters.PotcarSpec) > 0:
			for _, spec := range entry.Parameters.PotcarSpec {
				sym, err := titelSymbol(spec.Titel)
				if err != nil {
					return uncert.Zero(), incompatible(c, "%v", err)
				}
				used[sym] = true
			}
		case len(entry.Parameters.PotcarSymbols) > 0:
			for _, titel := range entry.Parameters.PotcarSymbols {
				sym, err := titelSymbol(titel)
				if err != nil {
					return uncert.Zero(), incompatible(c, "%v", err)
				}
				used[sym] = true
			}
		default:
			return uncert.Zero(), incompatible(c, "entry has no pseudopotential spec or symbols")
		}
	}

	if !sameSet(expected, used) {
		return uncert.Zero(), incompatible(c, "pseudopotentials %v do not match input set %s", setKeys(used), c.inputSet.Name)
	}
	return uncert.Zero(), nil
}

// titelSymbol extracts the functional symbol from a pseudopotential TITEL
// line, e.g. "PAW_PBE Fe_pv 06Sep2000" yields "Fe_pv".
func titelSymbol(titel string) (string, error) {
	fields := strings.Fields(titel)
	if len(fields) < 2 {
		return "", fmt.Errorf("malformed pseudopotential titel %q", titel)
	}
	return fields[1], nil
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func setKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
