package corrections

import (
	"errors"
	"fmt"

	"github.com/matsci-go/compat/pkg/core"
	"github.com/matsci-go/compat/pkg/uncert"
)

// Correction is one step of a compatibility scheme: a pre-defined rule that
// adjusts a computed entry based on its chemistry and calculation parameters.
type Correction interface {
	// Name is the display name used in correction breakdowns.
	Name() string
	// Description is a one-line summary for explanations.
	Description() string
	// GetCorrection computes the correction for entry. It returns an
	// *IncompatibleError when the entry violates the scheme's precondition;
	// the entry is never modified.
	GetCorrection(entry *core.Entry) (uncert.Value, error)
}

// Apply computes c's correction for entry and folds it into the entry's
// correction, combining uncertainties by quadrature and writing the result
// (or NaN, when a non-zero correction has no error data) into the entry's
// data. The entry is mutated in place; callers needing the original must
// Clone first.
func Apply(c Correction, entry *core.Entry) error {
	corr, err := c.GetCorrection(entry)
	if err != nil {
		return err
	}
	// Add treats a NaN stored uncertainty as zero.
	updated := corr.Add(uncert.New(entry.Correction, entry.Data.CorrectionUncertainty))
	entry.Correction = updated.Nominal
	entry.Data.CorrectionUncertainty = updated.ReportedStdDev()
	return nil
}

// IncompatibleError reports that an entry fails a correction's precondition:
// mismatched pseudopotentials, a disallowed calculation method, a Hubbard-U
// mismatch, or malformed parameters. Batch processing drops such entries and
// continues.
type IncompatibleError struct {
	// Correction is the display name of the rejecting correction.
	Correction string
	// Reason describes the failed precondition.
	Reason string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("entry incompatible with %s: %s", e.Correction, e.Reason)
}

// IsIncompatible reports whether err is (or wraps) an *IncompatibleError.
func IsIncompatible(err error) bool {
	var ie *IncompatibleError
	return errors.As(err, &ie)
}

func incompatible(c Correction, format string, args ...any) error {
	return &IncompatibleError{Correction: c.Name(), Reason: fmt.Sprintf(format, args...)}
}
