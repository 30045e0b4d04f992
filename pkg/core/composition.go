package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// amountTolerance is the deviation from an integer amount below which a
// composition is treated as integral for formula reduction.
const amountTolerance = 1e-8

// ElementAmount is one element/amount pair of a composition.
type ElementAmount struct {
	Symbol string
	Amount float64
}

// Composition maps element symbols to per-formula-unit amounts. The order in
// which elements were first added is preserved; it is the tie-breaker when
// elements are ranked by electronegativity.
type Composition struct {
	order   []string
	amounts map[string]float64
}

// NewComposition builds a composition from element/amount pairs. Amounts for
// repeated symbols accumulate. It fails on an empty pair list, an empty
// symbol, or a non-positive total amount for any element.
func NewComposition(pairs ...ElementAmount) (*Composition, error) {
	if len(pairs) == 0 {
		return nil, errors.New("composition must contain at least one element")
	}
	c := &Composition{amounts: make(map[string]float64, len(pairs))}
	for _, p := range pairs {
		if p.Symbol == "" {
			return nil, errors.New("composition element symbol must not be empty")
		}
		if _, seen := c.amounts[p.Symbol]; !seen {
			c.order = append(c.order, p.Symbol)
		}
		c.amounts[p.Symbol] += p.Amount
	}
	for _, sym := range c.order {
		if c.amounts[sym] <= 0 {
			return nil, fmt.Errorf("element %s has non-positive amount %g", sym, c.amounts[sym])
		}
	}
	return c, nil
}

// ParseComposition parses a plain formula such as "Fe2O3" or "LiFePO4".
// Amounts may be fractional ("Fe0.5O"); nested groups are not supported.
func ParseComposition(formula string) (*Composition, error) {
	var pairs []ElementAmount
	i := 0
	for i < len(formula) {
		if formula[i] < 'A' || formula[i] > 'Z' {
			return nil, fmt.Errorf("invalid formula %q: expected element symbol at position %d", formula, i)
		}
		j := i + 1
		for j < len(formula) && formula[j] >= 'a' && formula[j] <= 'z' {
			j++
		}
		sym := formula[i:j]
		k := j
		for k < len(formula) && (formula[k] == '.' || (formula[k] >= '0' && formula[k] <= '9')) {
			k++
		}
		amount := 1.0
		if k > j {
			var err error
			amount, err = strconv.ParseFloat(formula[j:k], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid amount in formula %q: %w", formula, err)
			}
		}
		pairs = append(pairs, ElementAmount{Symbol: sym, Amount: amount})
		i = k
	}
	return NewComposition(pairs...)
}

// Amount returns the amount of the element, or 0 if absent.
func (c *Composition) Amount(symbol string) float64 {
	return c.amounts[symbol]
}

// Contains reports whether the element is present with a positive amount.
func (c *Composition) Contains(symbol string) bool {
	return c.amounts[symbol] > 0
}

// Symbols returns the element symbols in first-seen order.
func (c *Composition) Symbols() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// NumElements returns the number of distinct elements.
func (c *Composition) NumElements() int {
	return len(c.order)
}

// NumAtoms returns the total number of atoms per formula unit.
func (c *Composition) NumAtoms() float64 {
	var n float64
	for _, amt := range c.amounts {
		n += amt
	}
	return n
}

// Clone returns an independent copy of the composition.
func (c *Composition) Clone() *Composition {
	cp := &Composition{
		order:   make([]string, len(c.order)),
		amounts: make(map[string]float64, len(c.amounts)),
	}
	copy(cp.order, c.order)
	for k, v := range c.amounts {
		cp.amounts[k] = v
	}
	return cp
}

// SymbolsByElectronegativity returns the element symbols ordered by
// increasing Pauling electronegativity. The sort is stable, so ties keep the
// composition's first-seen order.
func (c *Composition) SymbolsByElectronegativity() []string {
	syms := c.Symbols()
	sort.SliceStable(syms, func(i, j int) bool {
		return electronegativityOrZero(syms[i]) < electronegativityOrZero(syms[j])
	})
	return syms
}

// MostElectronegative returns the symbol of the most electronegative element
// present with a positive amount. Ties keep the composition's first-seen
// order.
func (c *Composition) MostElectronegative() string {
	best := ""
	bestX := math.Inf(-1)
	for _, sym := range c.order {
		if c.amounts[sym] <= 0 {
			continue
		}
		if x := electronegativityOrZero(sym); x > bestX {
			best, bestX = sym, x
		}
	}
	return best
}

// specialFormulas rewrites reduced formulas whose conventional form keeps a
// doubled unit: peroxides reduce to a 1:1 ratio ("LiO") but are written
// Li2O2, and the diatomic gases are written H2, O2, and so on.
var specialFormulas = map[string]string{
	"LiO": "Li2O2",
	"NaO": "Na2O2",
	"KO":  "K2O2",
	"RbO": "Rb2O2",
	"CsO": "Cs2O2",
	"HO":  "H2O2",
	"O":   "O2",
	"N":   "N2",
	"F":   "F2",
	"Cl":  "Cl2",
	"H":   "H2",
}

// ReducedFormula returns the formula normalized to the smallest integer
// atom-ratio representation, with elements ordered by increasing
// electronegativity (symbol as tie-breaker) and conventional special cases
// applied (Li2O2 rather than LiO, H2 rather than H).
func (c *Composition) ReducedFormula() string {
	ints := make(map[string]int, len(c.amounts))
	allInt := true
	for sym, amt := range c.amounts {
		r := math.Round(amt)
		if math.Abs(amt-r) > amountTolerance {
			allInt = false
			break
		}
		ints[sym] = int(r)
	}
	if !allInt {
		return c.Formula()
	}
	g := 0
	for _, n := range ints {
		g = gcd(g, n)
	}
	if g == 0 {
		g = 1
	}

	syms := c.Symbols()
	sort.Slice(syms, func(i, j int) bool {
		xi, xj := electronegativityOrZero(syms[i]), electronegativityOrZero(syms[j])
		if xi != xj {
			return xi < xj
		}
		return syms[i] < syms[j]
	})

	var b strings.Builder
	for _, sym := range syms {
		n := ints[sym] / g
		b.WriteString(sym)
		if n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	formula := b.String()
	if special, ok := specialFormulas[formula]; ok {
		return special
	}
	return formula
}

// Formula returns the unreduced formula with elements ordered by increasing
// electronegativity. Fractional amounts are kept as written.
func (c *Composition) Formula() string {
	syms := c.Symbols()
	sort.Slice(syms, func(i, j int) bool {
		xi, xj := electronegativityOrZero(syms[i]), electronegativityOrZero(syms[j])
		if xi != xj {
			return xi < xj
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, sym := range syms {
		b.WriteString(sym)
		if amt := c.amounts[sym]; amt != 1 {
			b.WriteString(strconv.FormatFloat(amt, 'g', -1, 64))
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c *Composition) String() string {
	return c.Formula()
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
