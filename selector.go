package saucedemo

import (
	"fmt"
	"strings"
)

type kind uint8

const (
	kindCSS kind = iota
	kindText
	kindRole
	kindLabel
	kindPlaceholder
	kindHas
)

// kindNames are the names understood by resolve.js.
var kindNames = [...]string{
	kindCSS:         "css",
	kindText:        "text",
	kindRole:        "role",
	kindLabel:       "label",
	kindPlaceholder: "placeholder",
	kindHas:         "has",
}

func (k kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Selector is a semantic description of an element.  It is a value, and is
// resolved against the live DOM only when a [Locator] built from it is used.
type Selector struct {
	kind  kind
	css   string
	text  string // visible text, accessible name or placeholder
	role  string
	exact bool
}

// ByCSS selects elements matching the css selector.
func ByCSS(css string) Selector {
	return Selector{kind: kindCSS, css: css}
}

// ByAttr selects elements having the attribute name equal to value.
func ByAttr(name, value string) Selector {
	return ByCSS("[" + name + "=" + cssQuote(value) + "]")
}

// ByTestID selects elements by the data-test attribute used throughout the
// store.
func ByTestID(id string) Selector {
	return ByAttr(attrTestID, id)
}

// ByText selects the innermost elements under css whose visible text
// contains text, ignoring case.  Empty css means any element.
func ByText(css, text string) Selector {
	return Selector{kind: kindText, css: css, text: text}
}

// ByRole selects elements by their ARIA role, explicit or implicit, and an
// accessible name containing name.  Empty name matches any name.
func ByRole(role, name string) Selector {
	return Selector{kind: kindRole, role: role, text: name}
}

// ByLabel selects form controls by their label or aria-label.
func ByLabel(text string) Selector {
	return Selector{kind: kindLabel, text: text}
}

// ByPlaceholder selects form controls by their placeholder text.
func ByPlaceholder(text string) Selector {
	return Selector{kind: kindPlaceholder, text: text}
}

// Has selects elements matching css that contain text anywhere inside,
// ignoring case.  It is used to pick a row out of a list.
func Has(css, text string) Selector {
	return Selector{kind: kindHas, css: css, text: text}
}

// Exact returns a copy of the selector that compares text and names for
// equality (after collapsing whitespace) instead of containment.
func (s Selector) Exact() Selector {
	s.exact = true
	return s
}

func (s Selector) String() string {
	var b strings.Builder
	switch s.kind {
	case kindCSS:
		b.WriteString("css=" + s.css)
	case kindText:
		fmt.Fprintf(&b, "text=%q", s.text)
		if s.css != "" {
			b.WriteString(" in " + s.css)
		}
	case kindRole:
		b.WriteString("role=" + s.role)
		if s.text != "" {
			fmt.Fprintf(&b, "[name=%q]", s.text)
		}
	case kindLabel:
		fmt.Fprintf(&b, "label=%q", s.text)
	case kindPlaceholder:
		fmt.Fprintf(&b, "placeholder=%q", s.text)
	case kindHas:
		fmt.Fprintf(&b, "%s:has-text(%q)", s.css, s.text)
	default:
		b.WriteString(s.kind.String())
	}
	if s.exact {
		b.WriteString(" (exact)")
	}
	return b.String()
}

// cssQuote quotes the value as a CSS string.
func cssQuote(v string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
}
