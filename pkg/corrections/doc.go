// Package corrections implements the energy-correction engine: individual
// correction rules and the Compatibility aggregator that applies an ordered
// list of them to computed entries.
//
// Correction units:
//
//   - PotcarCorrection: validates pseudopotential identity against an input
//     set; contributes no energy
//   - GasCorrection: replaces known gaseous-compound energies with reference
//     values
//   - AnionCorrection / CompositionCorrection: oxide- and sulfide-subtype
//     corrections with layered classification fallbacks (precomputed tag,
//     structural classifier, reduced-formula matching); the composition
//     variant adds flat per-atom terms for further anions and gases
//   - AqueousCorrection: adjusts compound energies for aqueous-phase phase
//     diagrams; must run last because it reads corrections applied earlier
//   - UCorrection: the GGA/GGA+U mixing scheme with Hubbard-U validation
//
// A correction either returns a value with its uncertainty or rejects the
// entry with an *IncompatibleError. Compatibility.ProcessEntry evaluates all
// units against the unmodified entry, sums the values propagating
// uncertainties in quadrature, and returns an adjusted copy; ProcessEntries
// drops rejected entries and keeps going, so one bad entry never fails a
// batch.
//
// The preset scheme constructors (NewMaterialsProjectCompatibility and
// friends) bundle the units in the required order with embedded tables.
package corrections
