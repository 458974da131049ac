package check

import (
	"fmt"
	"strings"
)

// docBase is the documentation root for the second diagnostic
// line. Each check links to its own pkg.go.dev anchor.
const docBase = "https://pkg.go.dev/digital.vasic.assertions/pkg/check#"

// diag accumulates the failure diagnostic for one check
// invocation. The rendered form is:
//
//	assertion failed: `Name(params)`
//	https://pkg.go.dev/digital.vasic.assertions/pkg/check#Name
//	 field: `value`,
//	 ...
//	 field: `value`
//
// Field lines are indented by one space and every line except
// the last ends with a comma. An optional free-form section
// (e.g. a diff) is appended after the field lines.
type diag struct {
	name    string
	params  string
	fields  []string
	section string
}

func newDiag(name, params string) *diag {
	return &diag{name: name, params: params}
}

// field appends one "name: `value`" line.
func (d *diag) field(name, value string) *diag {
	d.fields = append(
		d.fields,
		fmt.Sprintf("%s: `%s`", name, value),
	)
	return d
}

// input appends the standard label/debug pair for one input.
func (d *diag) input(param, label, debug string) *diag {
	d.field(param+" label", label)
	d.field(param+" debug", debug)
	return d
}

// trailer appends a free-form section after the field lines.
func (d *diag) trailer(text string) *diag {
	d.section = text
	return d
}

// fail renders the accumulated diagnostic into a *Failure.
func (d *diag) fail() *Failure {
	var b strings.Builder
	fmt.Fprintf(
		&b,
		"assertion failed: `%s(%s)`\n",
		d.name, d.params,
	)
	b.WriteString(docBase + d.name)

	for i, f := range d.fields {
		b.WriteString("\n ")
		b.WriteString(f)
		if i < len(d.fields)-1 {
			b.WriteString(",")
		}
	}

	if d.section != "" {
		b.WriteString("\n")
		b.WriteString(d.section)
	}

	return &Failure{Diagnostic: b.String()}
}

// debugOf renders a value's structural debug form. Map
// renderings are deterministic because fmt sorts map keys.
func debugOf(v any) string {
	return fmt.Sprintf("%#v", v)
}

// errDebug renders an error for a diagnostic line. The %#v form
// of common error types exposes unexported internals, so errors
// are shown as their quoted message instead.
func errDebug(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", err.Error())
}
