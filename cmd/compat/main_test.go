package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEntries = `[
  {
    "entry_id": "mp-oxide",
    "formula": "Fe2O3",
    "uncorrected_energy": -25.0,
    "parameters": {
      "hubbards": {"Fe": 5.3},
      "potcar_symbols": ["PAW_PBE Fe_pv 06Sep2000", "PAW_PBE O 08Apr2002"]
    }
  },
  {
    "entry_id": "mp-gga-oxide",
    "formula": "Fe2O3",
    "uncorrected_energy": -25.0,
    "parameters": {
      "potcar_symbols": ["PAW_PBE Fe_pv 06Sep2000", "PAW_PBE O 08Apr2002"]
    }
  }
]`

func writeEntries(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProcessCommand(t *testing.T) {
	path := writeEntries(t, sampleEntries)

	out, err := runCommand(t, "process", "--scheme", "mp2020", path)
	require.NoError(t, err)

	var results []resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	// The GGA run violates the expected Hubbard U and is dropped.
	require.Len(t, results, 1)
	assert.Equal(t, "mp-oxide", results[0].EntryID)
	assert.InDelta(t, -0.687*3+-2.256*2, results[0].Correction, 1e-9)
	require.NotNil(t, results[0].CorrectionUncertainty)
	assert.Greater(t, *results[0].CorrectionUncertainty, 0.0)
}

func TestProcessCommandLegacySchemeOmitsUncertainty(t *testing.T) {
	path := writeEntries(t, sampleEntries)

	out, err := runCommand(t, "process", "--scheme", "mp", path)
	require.NoError(t, err)

	var results []resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Nil(t, results[0].CorrectionUncertainty, "NaN uncertainty is omitted")
}

func TestProcessCommandUnknownScheme(t *testing.T) {
	path := writeEntries(t, sampleEntries)
	_, err := runCommand(t, "process", "--scheme", "bogus", path)
	assert.Error(t, err)
}

func TestExplainCommand(t *testing.T) {
	path := writeEntries(t, sampleEntries)

	out, err := runCommand(t, "explain", "--scheme", "mp", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MaterialsProjectCompatibility")
	assert.Contains(t, out, "Potcar Correction")
	// The incompatible entry is reported instead of explained.
	assert.Contains(t, out, "mp-gga-oxide")
}

func TestLoadEntriesValidation(t *testing.T) {
	_, err := loadEntries(writeEntries(t, `[{"uncorrected_energy": -1}]`))
	assert.Error(t, err, "missing composition")

	_, err = loadEntries(writeEntries(t, `not json`))
	assert.Error(t, err)

	entries, err := loadEntries(writeEntries(t, `[{"composition": {"Na": 1, "Cl": 1}, "uncorrected_energy": -7}]`))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "entry-0", entries[0].EntryID)
	assert.Equal(t, "NaCl", entries[0].Composition.ReducedFormula())
}
