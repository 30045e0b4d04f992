package corrections

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/matsci-go/compat/pkg/config"
	"github.com/matsci-go/compat/pkg/core"
)

func makeEntry(formula string, energy float64, hubbards map[string]float64) *core.Entry {
	comp, err := core.ParseComposition(formula)
	Expect(err).NotTo(HaveOccurred())
	entry, err := core.NewEntry(comp, energy)
	Expect(err).NotTo(HaveOccurred())
	entry.EntryID = formula
	for _, sym := range comp.Symbols() {
		pe, ok := config.MPRelaxSet().Potcar[sym]
		Expect(ok).To(BeTrue(), "MPRelaxSet has no entry for %s", sym)
		entry.Parameters.PotcarSymbols = append(entry.Parameters.PotcarSymbols,
			fmt.Sprintf("PAW_PBE %s 06Sep2000", pe.Symbol))
	}
	entry.Parameters.Hubbards = hubbards
	return entry
}

var _ = Describe("Preset schemes", func() {
	type constructor func(SchemeOptions) (*Compatibility, error)
	constructors := map[string]constructor{
		"MaterialsProjectCompatibility":            NewMaterialsProjectCompatibility,
		"MaterialsProject2020Compatibility":        NewMaterialsProject2020Compatibility,
		"MITCompatibility":                         NewMITCompatibility,
		"MITAqueousCompatibility":                  NewMITAqueousCompatibility,
		"MaterialsProjectAqueousCompatibility":     NewMaterialsProjectAqueousCompatibility,
		"MaterialsProjectAqueous2020Compatibility": NewMaterialsProjectAqueous2020Compatibility,
	}

	It("constructs every preset with default options", func() {
		for name, build := range constructors {
			scheme, err := build(SchemeOptions{})
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(scheme.Name()).To(Equal(name))
			Expect(scheme.Corrections()).NotTo(BeEmpty(), name)
		}
	})

	It("starts every preset with the pseudopotential validator", func() {
		for name, build := range constructors {
			scheme, err := build(SchemeOptions{})
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(scheme.Corrections()[0].Name()).To(ContainSubstring("Potcar"), name)
		}
	})

	It("rejects an unknown compat type at construction", func() {
		for name, build := range constructors {
			_, err := build(SchemeOptions{CompatType: "SCAN"})
			Expect(err).To(HaveOccurred(), name)
		}
	})
})

var _ = Describe("Batch processing", func() {
	var scheme *Compatibility

	BeforeEach(func() {
		var err error
		scheme, err = NewMaterialsProjectCompatibility(SchemeOptions{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps compatible entries and drops incompatible ones", func() {
		good := makeEntry("Fe2O3", -25, map[string]float64{"Fe": 5.3})
		bad := makeEntry("Fe2O3", -25, nil)
		bad.EntryID = "bad"

		out := scheme.ProcessEntries([]*core.Entry{good, bad})
		Expect(out).To(HaveLen(1))
		Expect(out[0].EntryID).To(Equal("Fe2O3"))
	})

	It("adjusts each surviving entry independently", func() {
		oxide := makeEntry("Fe2O3", -25, map[string]float64{"Fe": 5.3})
		salt := makeEntry("NaCl", -7, nil)

		out := scheme.ProcessEntries([]*core.Entry{oxide, salt})
		Expect(out).To(HaveLen(2))
		Expect(out[0].Correction).To(BeNumerically("~", -0.70229*3+-2.256*2, 1e-9))
		Expect(out[1].Correction).To(BeZero())
	})

	It("returns an empty, non-nil slice when every entry is dropped", func() {
		bad := makeEntry("Fe2O3", -25, nil)
		out := scheme.ProcessEntries([]*core.Entry{bad})
		Expect(out).NotTo(BeNil())
		Expect(out).To(BeEmpty())
	})

	It("flags missing uncertainty data with NaN", func() {
		entry := makeEntry("Fe2O3", -25, map[string]float64{"Fe": 5.3})
		out := scheme.ProcessEntries([]*core.Entry{entry})
		Expect(out).To(HaveLen(1))
		Expect(math.IsNaN(out[0].Data.CorrectionUncertainty)).To(BeTrue())
	})
})
