package worldview

import (
	"fmt"
	"strings"
)

// Markdown renders the worldview as a markdown table
func (w Worldview) Markdown() string {
	var b strings.Builder
	b.WriteString("# Worldview\n\n")
	b.WriteString("| Factor | Choice | Isolated impact |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range w {
		fmt.Fprintf(&b, "| %s (%s) | %s | %s |\n",
			r.Factor, r.Factor.Name(), escapeCell(r.Choice), escapeCell(r.IsolatedImpact))
	}
	b.WriteString("\n")
	b.WriteString(CombinedEffects)
	b.WriteString("\n")
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
