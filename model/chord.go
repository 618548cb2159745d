package model

type Pitches = []int

type Chord struct {
	Kind         string  `json:"kind"`
	Notation     string  `json:"notation"`
	LongNotation string  `json:"long_notation"`
	Name         string  `json:"name"`
	Tonic        *Note   `json:"tonic,omitempty"`
	Pitches      Pitches `json:"pitches"`
	Key          string  `json:"key"`
}

type NoteInfo struct {
	Note      Note     `json:"note"`
	Notation  string   `json:"notation"`
	Midi      *int     `json:"midi,omitempty"`
	Frequency *float64 `json:"frequency,omitempty"`
	Signature int      `json:"signature"`
	Solfege   string   `json:"solfege"`
}

type Template struct {
	Names    []string `json:"names"`
	LongName string   `json:"long_name"`
	Required []int    `json:"required"`
	Optional []int    `json:"optional"`
}
