package worldview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantOrder = []Factor{"S", "E", "T", "G", "C", "I", "P", "K", "R", "D"}

func factorsOf(w Worldview) []Factor {
	out := make([]Factor, len(w))
	for i, r := range w {
		out[i] = r.Factor
	}
	return out
}

func TestGenerateEmptyInputUsesFirstOptions(t *testing.T) {
	w := Generate(Input{})

	require.Len(t, w, 10)
	assert.Equal(t, wantOrder, factorsOf(w))
	for _, r := range w {
		assert.Equal(t, Options(r.Factor)[0], r.Choice, "factor %s", r.Factor)
		assert.Equal(t, "Baseline shift: "+r.Choice, r.IsolatedImpact)
		assert.Equal(t, CombinedEffects, r.CombinedEffects)
	}

	s, ok := w.Lookup(FactorSociety)
	require.True(t, ok)
	assert.Equal(t, "Guild hierarchy", s.Choice)
}

func TestGenerateNilInput(t *testing.T) {
	assert.Equal(t, Generate(Input{}), Generate(nil))
}

func TestGenerateKeepsValidChoiceAndIgnoresUnknownKeys(t *testing.T) {
	w := Generate(Input{"S": "Caste system", "Z": "ignored"})

	require.Len(t, w, 10)
	s, _ := w.Lookup(FactorSociety)
	assert.Equal(t, "Caste system", s.Choice)
	assert.Equal(t, "Baseline shift: Caste system", s.IsolatedImpact)

	withoutZ := Generate(Input{"S": "Caste system"})
	assert.Empty(t, cmp.Diff(withoutZ, w))
}

func TestGenerateFallsBackOnInvalidValues(t *testing.T) {
	in := Input{
		"S": "caste system", // strict match only
		"E": 42,
		"T": nil,
		"G": []any{"Dynastic rule"},
		"C": map[string]any{"choice": "Shame-based ethics"},
		"I": true,
		"P": " Overcrowded arcologies",
		"K": "",
	}
	w := Generate(in)

	for _, r := range w {
		assert.Equal(t, DefaultChoice(r.Factor), r.Choice, "factor %s", r.Factor)
	}
}

func TestGenerateSampleInput(t *testing.T) {
	in := Input{
		"S": "Egalitarian nomadism",
		"E": "Oceanic archipelago",
		"T": "AI-augmented biotech",
		"G": "Algorithmic direct democracy",
		"C": "Oral epic preservation",
		"I": "Clan-based loyalty",
		"P": "Overcrowded arcologies",
		"K": "Simulated learning loops",
		"R": "Solar superstorms",
		"D": "Communal labor rites",
	}
	w := Generate(in)

	for _, r := range w {
		assert.Equal(t, in[string(r.Factor)], r.Choice)
	}
	assert.Equal(t, in, w.Choices())
}

func TestGenerateEveryOptionRoundTrips(t *testing.T) {
	for _, f := range Factors() {
		for _, opt := range Options(f) {
			r, ok := Generate(Input{string(f): opt}).Lookup(f)
			require.True(t, ok)
			assert.Equal(t, opt, r.Choice)
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	in := Input{"R": "Quantum plagues", "D": 3.5}
	first := Generate(in)
	second := Generate(in)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Generate not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	in := Input{"S": "nope"}
	Generate(in)
	assert.Equal(t, Input{"S": "nope"}, in)
}

func TestOptionAccessorsReturnCopies(t *testing.T) {
	opts := Options(FactorSociety)
	opts[0] = "Tampered"
	assert.Equal(t, "Guild hierarchy", Options(FactorSociety)[0])

	table := FactorOptions()
	table[FactorSociety][0] = "Tampered"
	delete(table, FactorRisk)
	assert.Equal(t, "Guild hierarchy", DefaultChoice(FactorSociety))
	assert.Len(t, FactorOptions(), 10)

	order := Factors()
	order[0] = "X"
	assert.Equal(t, wantOrder, Factors())
}

func TestOptionTableShape(t *testing.T) {
	table := FactorOptions()
	require.Len(t, table, 10)
	for _, f := range wantOrder {
		assert.Len(t, table[f], 3, "factor %s", f)
	}
	assert.Nil(t, Options("Z"))
	assert.Equal(t, "", DefaultChoice("Z"))
}

func TestParseFactorAndName(t *testing.T) {
	f, ok := ParseFactor("I")
	assert.True(t, ok)
	assert.Equal(t, "Interpersonal bonds", f.Name())

	_, ok = ParseFactor("Z")
	assert.False(t, ok)
	assert.Equal(t, "Z", Factor("Z").Name())
}

func TestGenerateFreeform(t *testing.T) {
	out := GenerateFreeform(Input{"T": "Bronze age", "E": 7, "S": ""})

	require.Len(t, out, 10)
	for i, r := range out {
		assert.Equal(t, wantOrder[i], r.Factor)
		assert.Equal(t, CombinedEffects, r.CombinedEffects)
		if r.Factor == FactorTechnology {
			assert.Equal(t, "Baseline shift: Bronze age", r.IsolatedImpact)
			continue
		}
		assert.Equal(t, "Baseline shift: unspecified", r.IsolatedImpact)
	}

	custom := GenerateFreeform(Input{"R": "Sentient fog"})
	assert.Equal(t, "Baseline shift: Sentient fog", custom[8].IsolatedImpact)
}
