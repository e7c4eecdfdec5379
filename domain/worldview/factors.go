// Package worldview resolves a partial set of world-building choices into a
// complete, ordered worldview.
package worldview

// Factor identifies one world-building dimension
type Factor string

const (
	FactorSociety       Factor = "S"
	FactorEnvironment   Factor = "E"
	FactorTechnology    Factor = "T"
	FactorGovernment    Factor = "G"
	FactorCulture       Factor = "C"
	FactorInterpersonal Factor = "I"
	FactorPopulation    Factor = "P"
	FactorKnowledge     Factor = "K"
	FactorRisk          Factor = "R"
	FactorDailyLife     Factor = "D"
)

// factorOrder is the output order of every worldview
var factorOrder = [...]Factor{
	FactorSociety,
	FactorEnvironment,
	FactorTechnology,
	FactorGovernment,
	FactorCulture,
	FactorInterpersonal,
	FactorPopulation,
	FactorKnowledge,
	FactorRisk,
	FactorDailyLife,
}

var factorNames = map[Factor]string{
	FactorSociety:       "Society",
	FactorEnvironment:   "Environment",
	FactorTechnology:    "Technology",
	FactorGovernment:    "Government",
	FactorCulture:       "Culture",
	FactorInterpersonal: "Interpersonal bonds",
	FactorPopulation:    "Population",
	FactorKnowledge:     "Knowledge",
	FactorRisk:          "Risk",
	FactorDailyLife:     "Daily life",
}

// factorOptions is read-only; the first entry of each list is the default.
var factorOptions = map[Factor][]string{
	FactorSociety:       {"Guild hierarchy", "Egalitarian nomadism", "Caste system"},
	FactorEnvironment:   {"Oceanic archipelago", "Arid desert", "Flooded megacities"},
	FactorTechnology:    {"Bronze age", "AI-augmented biotech", "Post-quantum mesh"},
	FactorGovernment:    {"Dynastic rule", "Algorithmic direct democracy", "Anarcho-syndicalism"},
	FactorCulture:       {"Oral epic preservation", "Shame-based ethics", "Neo-totemic symbolism"},
	FactorInterpersonal: {"Clan-based loyalty", "Empathic pairing", "State-assigned kinships"},
	FactorPopulation:    {"Shrinking rural cores", "Overcrowded arcologies", "Immortal elite caste"},
	FactorKnowledge:     {"Dreamtime epistemology", "Guild-sealed knowledge", "Simulated learning loops"},
	FactorRisk:          {"Solar superstorms", "Quantum plagues", "Chrono-anomalies"},
	FactorDailyLife:     {"Communal labor rites", "Subterranean daylight inversion", "Intermittent identity roles"},
}

// Factors returns all factors in output order
func Factors() []Factor {
	out := make([]Factor, len(factorOrder))
	copy(out, factorOrder[:])
	return out
}

// ParseFactor accepts a factor code such as "S"
func ParseFactor(s string) (Factor, bool) {
	f := Factor(s)
	_, ok := factorOptions[f]
	return f, ok
}

// Name returns the human readable dimension name
func (f Factor) Name() string {
	if name, ok := factorNames[f]; ok {
		return name
	}
	return string(f)
}

// Options returns a copy of the candidate choices for f, or nil for an
// unknown factor.
func Options(f Factor) []string {
	opts, ok := factorOptions[f]
	if !ok {
		return nil
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// DefaultChoice returns the fallback choice for f
func DefaultChoice(f Factor) string {
	if opts := factorOptions[f]; len(opts) > 0 {
		return opts[0]
	}
	return ""
}

// FactorOptions returns a deep copy of the whole option table
func FactorOptions() map[Factor][]string {
	out := make(map[Factor][]string, len(factorOptions))
	for f := range factorOptions {
		out[f] = Options(f)
	}
	return out
}

// IsOption reports whether value is one of the choices for f
func IsOption(f Factor, value string) bool {
	for _, opt := range factorOptions[f] {
		if opt == value {
			return true
		}
	}
	return false
}
