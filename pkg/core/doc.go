// Package core provides the domain model consumed by the correction engine.
//
// This package contains the types that represent computed calculation results
// and their chemistry:
//
//   - Composition: element amounts with reduced-formula normalization
//   - Entry: a computed total energy with calculation parameters and a
//     mutable additive correction
//   - Parameters / EntryData: calculation settings and auxiliary
//     classification tags attached to an entry
//   - Structure / StructureClassifier: the opaque structure handle and the
//     external geometry-classification interface
//   - OxideType / SulfideType: anion subtype tags
//
// These types form the input surface of the corrections package and carry no
// correction logic themselves. Entries are assembled by external parsing
// layers; the engine only reads and adjusts them.
//
// The core package is designed to be:
//   - Immutable-friendly: Clone yields independent copies for copy-on-write
//   - Deterministic: element ordering is stable and electronegativity-based
//   - Independent of any file or network I/O (pure domain logic)
package core
