package model

// Note is the serialized form of a note.
type Note struct {
	Pos      int  `json:"pos"`
	Relative bool `json:"relative"`
	Acc      int  `json:"acc"`
}
