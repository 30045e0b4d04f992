// Package config loads and caches the immutable lookup data the correction
// engine runs on.
//
// Two kinds of configuration live here:
//
//   - CorrectionTables: a named scheme's YAML lookup tables (compound
//     energies, anion corrections, Hubbard-U rows) and optionally uncertainty
//     tables of the same shape. Built-in presets (MP, MIT, MP2020 with
//     uncertainties) are embedded; external files load through LoadTables.
//   - InputSet: a calculation-parameter preset naming the expected
//     pseudopotential per element plus the Hubbard-U settings, used for
//     consistency validation rather than lookup.
//
// Parsed tables are cached by source and never evicted; they are shared
// read-only and safe for concurrent use. Table YAML is decoded with yaml.v3
// because formula and element-symbol keys are case-sensitive.
package config
