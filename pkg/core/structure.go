package core

// Structure is an opaque handle to an entry's atomic structure. The engine
// never inspects it; it is passed through to a StructureClassifier.
type Structure interface{}

// OxideType is the oxygen-anion subtype of a structure or composition.
type OxideType string

// Oxygen-anion subtypes. The empty string means "not classified".
const (
	OxideTypeOxide      OxideType = "oxide"
	OxideTypePeroxide   OxideType = "peroxide"
	OxideTypeSuperoxide OxideType = "superoxide"
	OxideTypeOzonide    OxideType = "ozonide"
	OxideTypeHydroxide  OxideType = "hydroxide"
)

// SulfideType is the sulfur-anion subtype of a structure or composition.
type SulfideType string

// Sulfur-anion subtypes. The empty string means "not classified".
const (
	SulfideTypeSulfide     SulfideType = "sulfide"
	SulfideTypePolysulfide SulfideType = "polysulfide"
)

// StructureClassifier resolves anion subtypes from atomic geometry.
// Implementations live outside this module; structural analysis is an
// external concern. Corrections fall back to formula heuristics when no
// classifier or structure is available.
type StructureClassifier interface {
	// OxideType classifies the oxygen-anion subtype of s and returns the
	// number of O-O (or O-H for hydroxides) bonds found, which callers use as
	// the correction multiplier for non-hydroxide subtypes. relativeCutoff
	// scales the bond-length threshold of the search.
	OxideType(s Structure, relativeCutoff float64) (OxideType, int, error)
	// SulfideType classifies the sulfur-anion subtype of s.
	SulfideType(s Structure) (SulfideType, error)
}
