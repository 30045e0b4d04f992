package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTables(t *testing.T) {
	data := []byte(`
Name: Test
Advanced:
  CompoundEnergies:
    N2: -8.2073
  UCorrections:
    O:
      Fe: -2.256
OxideCorrections:
  oxide: -0.702
  peroxide: -0.465
SulfideCorrections:
  sulfide: -0.285
AqueousCompoundEnergies:
  H2O: -4.972
`)
	tables, err := ParseTables(data)
	require.NoError(t, err)
	assert.Equal(t, "Test", tables.Name)
	assert.InDelta(t, -8.2073, tables.Advanced.CompoundEnergies["N2"], 1e-12)
	assert.InDelta(t, -2.256, tables.Advanced.UCorrections["O"]["Fe"], 1e-12)
	assert.InDelta(t, -0.465, tables.OxideCorrections["peroxide"], 1e-12)
	assert.InDelta(t, -4.972, tables.AqueousCompoundEnergies["H2O"], 1e-12)
}

func TestParseTablesCaseSensitiveKeys(t *testing.T) {
	// Formula and element keys must survive parsing verbatim; "Fe" and "fe"
	// are different keys.
	data := []byte(`
Name: Test
CompositionCorrections:
  Br: -0.534
  H: -0.179
`)
	tables, err := ParseTables(data)
	require.NoError(t, err)
	_, ok := tables.CompositionCorrections["Br"]
	assert.True(t, ok)
	_, ok = tables.CompositionCorrections["br"]
	assert.False(t, ok)
}

func TestParseTablesRequiresName(t *testing.T) {
	_, err := ParseTables([]byte(`OxideCorrections: {oxide: -0.7}`))
	assert.Error(t, err)
}

func TestLoadTablesCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: Cached\n"), 0o644))

	first, err := LoadTables(path)
	require.NoError(t, err)
	second, err := LoadTables(path)
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated loads must return the cached instance")
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	mp := MPTables()
	assert.Equal(t, "MP", mp.Name)
	assert.Contains(t, mp.OxideCorrections, "peroxide")
	assert.Contains(t, mp.Advanced.UCorrections["O"], "Fe")
	assert.Same(t, mp, MPTables(), "presets parse once")

	mit := MITTables()
	assert.Equal(t, "MIT", mit.Name)
	assert.Contains(t, mit.Advanced.CompoundEnergies, "N2")

	mp2020 := MP2020Tables()
	assert.Equal(t, "MP2020", mp2020.Name)
	assert.Contains(t, mp2020.CompositionCorrections, "Br")

	errs := MP2020Uncertainties()
	for key := range mp2020.CompositionCorrections {
		assert.Contains(t, errs.CompositionCorrections, key,
			"uncertainty table must mirror the value table")
	}
}

func TestInputSets(t *testing.T) {
	mp := MPRelaxSet()
	assert.Equal(t, "MPRelaxSet", mp.Name)
	assert.Equal(t, "Fe_pv", mp.Potcar["Fe"].Symbol)
	assert.NotEmpty(t, mp.Potcar["Fe"].Hash)
	assert.InDelta(t, 5.3, mp.HubbardU["O"]["Fe"], 1e-12)

	mit := MITRelaxSet()
	assert.Equal(t, "Fe", mit.Potcar["Fe"].Symbol)
	assert.InDelta(t, 4.0, mit.HubbardU["O"]["Fe"], 1e-12)
}
