package model

type IdentifyRequestBody struct {
	Pitches   Pitches `json:"pitches"`
	Inversion *int    `json:"inversion,omitempty"`
	Scales    bool    `json:"scales,omitempty"`
}

type IdentifyResponse struct {
	Key     string  `json:"key"`
	Results []Chord `json:"results"`
}

type MatchResult struct {
	Kind  string    `json:"kind"`
	Note  *NoteInfo `json:"note,omitempty"`
	Chord *Chord    `json:"chord,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
