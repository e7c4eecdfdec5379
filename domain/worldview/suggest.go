package worldview

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Issue describes a supplied value that was not used
type Issue struct {
	Factor     Factor `json:"factor" yaml:"factor"`
	Value      any    `json:"value" yaml:"value"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Suggest returns the option of f closest to value, if one is close enough
// to be a likely typo. Exact matches return false.
func Suggest(f Factor, value string) (string, bool) {
	if IsOption(f, value) {
		return "", false
	}
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, opt := range factorOptions[f] {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(opt))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = opt, dist
		}
	}
	if bestDist < 0 || bestDist > suggestionLimit(len(best)) {
		return "", false
	}
	return best, true
}

func suggestionLimit(n int) int {
	limit := n / 4
	if limit < 2 {
		return 2
	}
	return limit
}

// Issues lists every factor whose supplied value Generate would discard.
// Factors absent from in are not issues.
func Issues(in Input) []Issue {
	var out []Issue
	for _, f := range factorOrder {
		raw, present := in[string(f)]
		if !present {
			continue
		}
		s, isString := raw.(string)
		if isString && IsOption(f, s) {
			continue
		}
		issue := Issue{Factor: f, Value: raw}
		if isString {
			issue.Suggestion, _ = Suggest(f, s)
		}
		out = append(out, issue)
	}
	return out
}
