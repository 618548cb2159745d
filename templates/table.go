package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/tonal/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Highest offset a template may use: extensions reach up to the 13th.
const MaxOffset = 24

// DataIntegrityError means the static template corpus is malformed, e.g. two
// templates in one table share a display name. It is raised as a panic.
type DataIntegrityError struct {
	Category string
	Name     string
	Reason   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s table: %q: %s", e.Category, e.Name, e.Reason)
}

// Table is an immutable list of templates of one category (chord or scale).
type Table struct {
	category  string
	templates []*Template
	aliases   []string
}

// NewTable validates defs and freezes them. A malformed table is a defect in
// the data, so it panics with a *DataIntegrityError instead of returning.
func NewTable(category string, defs []Template) *Table {
	if err := Validate(category, defs); err != nil {
		panic(err)
	}

	t := &Table{category: category}
	names := make(map[string]bool)
	for i := range defs {
		tpl := defs[i]
		t.templates = append(t.templates, &tpl)
		for _, name := range tpl.DisplayNames() {
			names[name] = true
		}
	}

	// longest first so that no alias is shadowed by one of its prefixes
	t.aliases = util.GetKeys(names)
	sort.Slice(t.aliases, func(i, j int) bool {
		if len(t.aliases[i]) != len(t.aliases[j]) {
			return len(t.aliases[i]) > len(t.aliases[j])
		}
		return t.aliases[i] < t.aliases[j]
	})
	return t
}

// Validate reports the first integrity problem found in defs.
func Validate(category string, defs []Template) error {
	owner := make(map[string]int)
	for i, tpl := range defs {
		if len(tpl.names) == 0 {
			return &DataIntegrityError{category, fmt.Sprintf("#%d", i), "template has no names"}
		}
		if len(tpl.required) == 0 || tpl.required[0] != 0 {
			return &DataIntegrityError{category, tpl.Name(), "required offsets must contain the tonic"}
		}
		for _, off := range tpl.Offsets() {
			if off < 0 || off >= MaxOffset {
				return &DataIntegrityError{category, tpl.Name(), fmt.Sprintf("offset %d out of range", off)}
			}
		}
		for _, off := range tpl.optional {
			if slices.Contains(tpl.required, off) {
				return &DataIntegrityError{category, tpl.Name(), fmt.Sprintf("offset %d is both required and optional", off)}
			}
		}
		for _, name := range tpl.DisplayNames() {
			if name == "" || strings.TrimSpace(name) != name {
				return &DataIntegrityError{category, name, "names must be non-empty and trimmed"}
			}
			if j, ok := owner[name]; ok && j != i {
				return &DataIntegrityError{category, name, fmt.Sprintf("shared by %q and %q", defs[j].Name(), tpl.Name())}
			}
			owner[name] = i
		}
	}
	return nil
}

func (t *Table) Category() string {
	return t.category
}

func (t *Table) Len() int {
	return len(t.templates)
}

// Templates returns the templates in definition order.
func (t *Table) Templates() []*Template {
	return slices.Clone(t.templates)
}

// Aliases returns every display name, longest first.
func (t *Table) Aliases() []string {
	return slices.Clone(t.aliases)
}

// Resolve finds the single template carrying name. More than one hit means
// the table is corrupt and panics.
func (t *Table) Resolve(name string) (*Template, bool) {
	var found []*Template
	for _, tpl := range t.templates {
		if tpl.HasName(name) {
			found = append(found, tpl)
		}
	}
	if len(found) > 1 {
		panic(&DataIntegrityError{t.category, name, fmt.Sprintf("resolves to %d templates", len(found))})
	}
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// MustResolve is Resolve for names known to exist.
func (t *Table) MustResolve(name string) *Template {
	tpl, ok := t.Resolve(name)
	if !ok {
		panic(errors.Errorf("%s table: no template named %q", t.category, name))
	}
	return tpl
}

// Contains reports whether tpl is a member of the table.
func (t *Table) Contains(tpl *Template) bool {
	return slices.Contains(t.templates, tpl)
}
