package httpapi

import "strings"

// noun names a resource in user-facing messages. Spanish adjectives agree
// with the noun's gender.
type noun struct {
	label    string
	feminine bool
}

func masculine(label string) noun { return noun{label: label} }
func feminine(label string) noun  { return noun{label: label, feminine: true} }

func (n noun) agree(stem string) string {
	if n.feminine {
		return stem + "a"
	}
	return stem + "o"
}

func (n noun) indefinite() string {
	article := "un"
	if n.feminine {
		article = "una"
	}
	return article + " " + strings.ToLower(n.label)
}

func (n noun) created() string   { return n.label + " " + n.agree("cread") + " exitosamente" }
func (n noun) updated() string   { return n.label + " " + n.agree("actualizad") + " exitosamente" }
func (n noun) deleted() string   { return n.label + " " + n.agree("eliminad") + " exitosamente" }
func (n noun) notFound() string  { return n.label + " no " + n.agree("encontrad") }
func (n noun) unchanged() string { return n.label + " no " + n.agree("modificad") + " (los datos son idénticos)" }
func (n noun) duplicate() string { return "Ya existe " + n.indefinite() + " con esos datos" }
