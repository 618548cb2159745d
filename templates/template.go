package templates

import (
	"strings"

	"github.com/jsphweid/tonal/util"
	"golang.org/x/exp/slices"
)

// Template is a named chord or scale shape: semitone offsets from a tonic.
// Templates are shared by reference from a frozen Table and never change
// after construction, so every accessor hands out copies.
type Template struct {
	names    []string
	longName string
	required []int
	optional []int
}

// Define builds a template. The first name is the canonical short form.
func Define(names []string, longName string, required []int, optional ...int) Template {
	return Template{
		names:    slices.Clone(names),
		longName: longName,
		required: util.Uniq(required),
		optional: util.Uniq(optional),
	}
}

// Name is the canonical short alias.
func (t *Template) Name() string {
	if len(t.names) == 0 {
		return ""
	}
	return t.names[0]
}

func (t *Template) Names() []string {
	return slices.Clone(t.names)
}

func (t *Template) LongName() string {
	return t.longName
}

// Required are the offsets that must sound for the shape to be recognised.
func (t *Template) Required() []int {
	return slices.Clone(t.required)
}

// Optional are offsets that may be present or omitted, commonly the fifth.
func (t *Template) Optional() []int {
	return slices.Clone(t.optional)
}

func (t *Template) HasOptional() bool {
	return len(t.optional) > 0
}

// Offsets is the sorted union of required and optional offsets.
func (t *Template) Offsets() []int {
	return util.Union(t.required, t.optional)
}

// DisplayNames are the aliases plus the long name, every string the
// notation grammar resolves to this template.
func (t *Template) DisplayNames() []string {
	res := t.Names()
	if t.longName != "" && !slices.Contains(res, t.longName) {
		res = append(res, t.longName)
	}
	return res
}

func (t *Template) HasName(name string) bool {
	return slices.Contains(t.DisplayNames(), name)
}

func (t *Template) String() string {
	return t.Name() + " (" + strings.TrimSpace(t.longName) + ")"
}
