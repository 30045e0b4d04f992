package config

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed tables/*.yaml
var presetFS embed.FS

// preset lazily parses one embedded table file. Embedded presets are
// compile-time assets, so a parse failure is a programming error and panics.
type preset struct {
	file   string
	once   sync.Once
	tables *CorrectionTables
}

func (p *preset) get() *CorrectionTables {
	p.once.Do(func() {
		data, err := presetFS.ReadFile("tables/" + p.file)
		if err != nil {
			panic(fmt.Sprintf("embedded correction tables %s: %v", p.file, err))
		}
		t, err := ParseTables(data)
		if err != nil {
			panic(fmt.Sprintf("embedded correction tables %s: %v", p.file, err))
		}
		p.tables = t
	})
	return p.tables
}

var (
	mpPreset                  = &preset{file: "MPCompatibility.yaml"}
	mitPreset                 = &preset{file: "MITCompatibility.yaml"}
	mp2020Preset              = &preset{file: "MP2020Compatibility.yaml"}
	mp2020UncertaintiesPreset = &preset{file: "MP2020CompatibilityUncertainties.yaml"}
)

// MPTables returns the built-in correction tables for MPRelaxSet runs.
// The returned tables are shared and read-only.
func MPTables() *CorrectionTables { return mpPreset.get() }

// MITTables returns the built-in correction tables for MITRelaxSet runs.
func MITTables() *CorrectionTables { return mitPreset.get() }

// MP2020Tables returns the built-in 2020 composition-based correction tables.
func MP2020Tables() *CorrectionTables { return mp2020Preset.get() }

// MP2020Uncertainties returns the standard deviations matching MP2020Tables.
func MP2020Uncertainties() *CorrectionTables { return mp2020UncertaintiesPreset.get() }
