package worldview

// CombinedEffects is the interplay text attached to every factor result.
// No cross-factor interaction is computed.
const CombinedEffects = "Interplays with other factors to produce emergent narratives."

// Unspecified is the freeform fallback for a missing value
const Unspecified = "unspecified"

const impactPrefix = "Baseline shift: "

// Input maps factor codes to arbitrary values. Keys that are not factor
// codes are ignored, as are values that are not strings.
type Input map[string]any

// FactorResult is the resolved choice for one factor
type FactorResult struct {
	Factor          Factor `json:"factor" yaml:"factor"`
	Choice          string `json:"choice" yaml:"choice"`
	IsolatedImpact  string `json:"isolatedImpact" yaml:"isolatedImpact"`
	CombinedEffects string `json:"combinedEffects" yaml:"combinedEffects"`
}

// Worldview holds one FactorResult per factor, in factor order
type Worldview []FactorResult

// Generate resolves in into a complete worldview. A value is kept only when
// it is a string equal to one of the factor's options; anything else falls
// back to the factor's first option. Generate never fails.
func Generate(in Input) Worldview {
	out := make(Worldview, 0, len(factorOrder))
	for _, f := range factorOrder {
		choice := DefaultChoice(f)
		if v, ok := in[string(f)].(string); ok && IsOption(f, v) {
			choice = v
		}
		out = append(out, FactorResult{
			Factor:          f,
			Choice:          choice,
			IsolatedImpact:  impactPrefix + choice,
			CombinedEffects: CombinedEffects,
		})
	}
	return out
}

// Lookup returns the result for f
func (w Worldview) Lookup(f Factor) (FactorResult, bool) {
	for _, r := range w {
		if r.Factor == f {
			return r, true
		}
	}
	return FactorResult{}, false
}

// Choices flattens the worldview into an Input that regenerates it
func (w Worldview) Choices() Input {
	in := make(Input, len(w))
	for _, r := range w {
		in[string(r.Factor)] = r.Choice
	}
	return in
}

// FreeformResult is a factor result without a validated choice
type FreeformResult struct {
	Factor          Factor `json:"factor" yaml:"factor"`
	IsolatedImpact  string `json:"isolatedImpact" yaml:"isolatedImpact"`
	CombinedEffects string `json:"combinedEffects" yaml:"combinedEffects"`
}

// GenerateFreeform accepts any non-empty string per factor without checking
// it against the option table; missing values read "unspecified".
//
// Deprecated: use Generate, which only ever yields known options.
func GenerateFreeform(in Input) []FreeformResult {
	out := make([]FreeformResult, 0, len(factorOrder))
	for _, f := range factorOrder {
		value := Unspecified
		if v, ok := in[string(f)].(string); ok && v != "" {
			value = v
		}
		out = append(out, FreeformResult{
			Factor:          f,
			IsolatedImpact:  impactPrefix + value,
			CombinedEffects: CombinedEffects,
		})
	}
	return out
}
