package worldview

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFromJSONKeepsTypes(t *testing.T) {
	in := InputFromJSON([]byte(`{"S":"Caste system","E":42,"T":null,"G":["Dynastic rule"],"C":{"x":1},"I":true,"Z":"ignored"}`))

	assert.Equal(t, "Caste system", in["S"])
	assert.Equal(t, float64(42), in["E"])
	assert.Contains(t, in, "T")
	assert.Nil(t, in["T"])
	assert.Equal(t, true, in["I"])

	w := Generate(in)
	s, _ := w.Lookup(FactorSociety)
	g, _ := w.Lookup(FactorGovernment)
	assert.Equal(t, "Caste system", s.Choice)
	assert.Equal(t, "Dynastic rule", g.Choice) // default, the array is not a string
}

func TestInputFromJSONNonObjects(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"S"`, `12`, `{"S":`, `not json`} {
		assert.Empty(t, InputFromJSON([]byte(body)), "body %q", body)
	}
}

func TestInputFromValues(t *testing.T) {
	values := url.Values{
		"S": {"Caste system", "Guild hierarchy"},
		"E": {""},
		"Z": {"ignored"},
	}
	in := InputFromValues(values)

	assert.Equal(t, Input{"S": "Caste system", "Z": "ignored"}, in)
}
