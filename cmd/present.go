package cmd

import (
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/match"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/templates"
)

func toNoteInfo(n note.Note, flats bool) model.NoteInfo {
	info := model.NoteInfo{
		Note:      n.ToObject(),
		Notation:  n.Notation(flats),
		Signature: n.Signature(),
		Solfege:   n.Solfege(),
	}
	if midi, err := n.MIDI(); err == nil {
		info.Midi = &midi
	}
	if freq, err := n.Frequency(); err == nil {
		info.Frequency = &freq
	}
	return info
}

func toChordModel(c chord.Chord, flats bool) model.Chord {
	res := model.Chord{
		Kind:         c.Kind().String(),
		Notation:     c.Notation(flats),
		LongNotation: c.LongNotation(flats),
		Name:         c.Name(),
		Pitches:      c.Pitches(),
		Key:          c.Key(),
	}
	if tonic, ok := c.Tonic(); ok {
		obj := tonic.ToObject()
		res.Tonic = &obj
	}
	return res
}

func toChordModels(chords []chord.Chord, flats bool) []model.Chord {
	res := make([]model.Chord, 0, len(chords))
	for _, c := range chords {
		res = append(res, toChordModel(c, flats))
	}
	return res
}

func toMatchResult(m match.Match, flats bool) model.MatchResult {
	res := model.MatchResult{Kind: m.Kind.String()}
	if m.Kind == match.KindNote {
		info := toNoteInfo(*m.Note, flats)
		res.Note = &info
	} else {
		c := toChordModel(*m.Chord, flats)
		res.Chord = &c
	}
	return res
}

func toTemplateModels(table *templates.Table) []model.Template {
	var res []model.Template
	for _, tpl := range table.Templates() {
		res = append(res, model.Template{
			Names:    tpl.Names(),
			LongName: tpl.LongName(),
			Required: tpl.Required(),
			Optional: tpl.Optional(),
		})
	}
	return res
}
