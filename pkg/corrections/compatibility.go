package corrections

import (
	"fmt"
	"io"
	"strings"

	"github.com/matsci-go/compat/internal/logging"
	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// Compatibility combines an ordered list of corrections to apply to entries.
// Ordering is significant: a pseudopotential validator must run before any
// energy adjustment, and the aqueous correction must run last because it
// reads the entry's previously applied correction.
type Compatibility struct {
	name        string
	corrections []Correction
}

// NewCompatibility builds a scheme from corrections in application order.
func NewCompatibility(name string, corrections ...Correction) *Compatibility {
	return &Compatibility{name: name, corrections: corrections}
}

func (c *Compatibility) Name() string { return c.name }

// Corrections returns the corrections in application order.
func (c *Compatibility) Corrections() []Correction {
	out := make([]Correction, len(c.corrections))
	copy(out, c.corrections)
	return out
}

// CorrectionsFor evaluates every correction against the entry as given and
// returns the non-zero values keyed by correction name. It returns an
// IncompatibleError as soon as any correction rejects the entry.
func (c *Compatibility) CorrectionsFor(entry *core.Entry) (map[string]uncert.Value, error) {
	vals := make(map[string]uncert.Value, len(c.corrections))
	for _, corr := range c.corrections {
		v, err := corr.GetCorrection(entry)
		if err != nil {
			return nil, err
		}
		if !v.IsZero() {
			vals[corr.Name()] = v
		}
	}
	return vals, nil
}

// ProcessEntry evaluates the scheme against the entry and returns an adjusted
// copy. The input entry is never mutated. The copy's correction is the sum of
// all correction values, replacing any correction the entry carried, and its
// uncertainty field holds the propagated standard deviation (or NaN when the
// corrections carry no uncertainty data). An IncompatibleError is returned
// when any correction rejects the entry.
func (c *Compatibility) ProcessEntry(entry *core.Entry) (*core.Entry, error) {
	vals, err := c.CorrectionsFor(entry)
	if err != nil {
		return nil, err
	}
	total := uncert.Zero()
	for _, v := range vals {
		total = total.Add(v)
	}
	adjusted := entry.Clone()
	adjusted.Correction = total.Nominal
	adjusted.Data.CorrectionUncertainty = total.ReportedStdDev()
	return adjusted, nil
}

// ProcessEntries maps ProcessEntry over entries. Incompatible entries are
// logged and excluded from the output; the batch never fails as a whole.
func (c *Compatibility) ProcessEntries(entries []*core.Entry) []*core.Entry {
	out := make([]*core.Entry, 0, len(entries))
	for _, entry := range entries {
		adjusted, err := c.ProcessEntry(entry)
		if err != nil {
			logging.Log.Info("excluding incompatible entry",
				"scheme", c.name, "entryID", entry.EntryID, "reason", err.Error())
			continue
		}
		out = append(out, adjusted)
	}
	return out
}

// CorrectionExplanation describes one correction's contribution to an entry.
type CorrectionExplanation struct {
	Name        string
	Description string
	Value       float64
	Uncertainty float64
}

// Explanation is a breakdown of how a scheme adjusts one entry.
type Explanation struct {
	Compatibility         string
	UncorrectedEnergy     float64
	CorrectedEnergy       float64
	CorrectionUncertainty float64
	Corrections           []CorrectionExplanation
}

// Explanation builds the per-correction breakdown for an entry without
// mutating it. It fails with the underlying IncompatibleError when the
// scheme rejects the entry.
func (c *Compatibility) Explanation(entry *core.Entry) (*Explanation, error) {
	adjusted, err := c.ProcessEntry(entry)
	if err != nil {
		return nil, err
	}
	vals, err := c.CorrectionsFor(entry)
	if err != nil {
		return nil, err
	}
	ex := &Explanation{
		Compatibility:         c.name,
		UncorrectedEnergy:     adjusted.UncorrectedEnergy,
		CorrectedEnergy:       adjusted.Energy(),
		CorrectionUncertainty: adjusted.Data.CorrectionUncertainty,
	}
	for _, corr := range c.corrections {
		v := vals[corr.Name()]
		ex.Corrections = append(ex.Corrections, CorrectionExplanation{
			Name:        corr.Name(),
			Description: corr.Description(),
			Value:       v.Nominal,
			Uncertainty: v.StdDev,
		})
	}
	return ex, nil
}

// Explain writes a human-readable version of Explanation to w.
func (c *Compatibility) Explain(w io.Writer, entry *core.Entry) error {
	ex, err := c.Explanation(entry)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The uncorrected value of the energy of %s is %f eV\n", entry.Composition, ex.UncorrectedEnergy)
	fmt.Fprintf(w, "The following corrections / screening are applied for %s:\n\n", ex.Compatibility)
	for _, ce := range ex.Corrections {
		fmt.Fprintf(w, "%s: %s\n", ce.Name, ce.Description)
		fmt.Fprintf(w, "For the entry, this correction has the value %f eV.\n", ce.Value)
		if ce.Uncertainty != 0 || ce.Value == 0 {
			fmt.Fprintf(w, "This correction has an uncertainty value of %f eV.\n", ce.Uncertainty)
		} else {
			fmt.Fprintln(w, "This correction does not have uncertainty data available")
		}
		fmt.Fprintln(w, strings.Repeat("-", 30))
	}
	fmt.Fprintf(w, "The final energy after corrections is %f\n", ex.CorrectedEnergy)
	return nil
}
