package installer

import "strings"

// Plan is the ordered list of package locators handed to the package
// manager in a single invocation. Order only affects log output.
type Plan []string

// NewPlan builds the standard plan: runtime, renderer, build tooling and
// template, in that order. Empty entries are skipped.
func NewPlan(runtime, renderer, scripts, template string) Plan {
	var p Plan
	for _, pkg := range []string{runtime, renderer, scripts, template} {
		if pkg != "" {
			p = append(p, pkg)
		}
	}
	return p
}

// String joins the locators with spaces, for logs.
func (p Plan) String() string {
	return strings.Join(p, " ")
}
