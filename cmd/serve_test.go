package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/tonal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method string, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHandleNote(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/notes/A4", "")
	require.Equal(t, http.StatusOK, w.Code)

	var info model.NoteInfo
	decode(t, w, &info)

	assert := assert.New(t)
	assert.Equal("A4", info.Notation)
	assert.Equal(model.Note{Pos: 57, Relative: false, Acc: 0}, info.Note)
	require.NotNil(t, info.Midi)
	assert.Equal(69, *info.Midi)
	require.NotNil(t, info.Frequency)
	assert.InDelta(440.0, *info.Frequency, 1e-9)
	assert.Equal("la", info.Solfege)
}

func TestHandleNotePitchClass(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/notes/Bb", "")
	require.Equal(t, http.StatusOK, w.Code)

	var info model.NoteInfo
	decode(t, w, &info)
	assert.Equal(t, "B♭", info.Notation)
	assert.Nil(t, info.Midi)
	assert.Nil(t, info.Frequency)
	assert.Equal(t, -2, info.Signature)
}

func TestHandleNoteInvalid(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/notes/H4", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res model.ErrorResponse
	decode(t, w, &res)
	assert.Contains(t, res.Error, "H4")
}

func TestHandleChord(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/chords/C%23m7", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c model.Chord
	decode(t, w, &c)

	assert := assert.New(t)
	assert.Equal("chord", c.Kind)
	assert.Equal("C♯m7", c.Notation)
	assert.Equal("C♯ minor 7th", c.LongNotation)
	assert.Equal("m7", c.Name)
	assert.Equal([]int{1, 4, 8, 11}, c.Pitches)
	require.NotNil(t, c.Tonic)
	assert.Equal(model.Note{Pos: 1, Relative: true, Acc: 1}, *c.Tonic)
}

func TestHandleChordWithSlashInName(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/chords/G6/9", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c model.Chord
	decode(t, w, &c)
	assert.Equal(t, "6/9", c.Name)
}

func TestHandleChordTranspose(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/chords/C?transpose=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c model.Chord
	decode(t, w, &c)
	assert.Equal(t, "Dmaj", c.Notation)

	w = doRequest(t, http.MethodGet, "/chords/C?transpose=two", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChordFlats(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/chords/C?transpose=1&flats=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c model.Chord
	decode(t, w, &c)
	assert.Equal(t, "D♭maj", c.Notation)
}

func TestHandleChordNotFound(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/chords/Cdorian", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleScale(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/scales/D%20dorian", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c model.Chord
	decode(t, w, &c)
	assert.Equal(t, "scale", c.Kind)
	assert.Equal(t, "D dorian", c.Notation)
	assert.Equal(t, []int{2, 4, 5, 7, 9, 11, 0}, c.Pitches)
}

func TestHandleIdentify(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodPost, "/identify", `{"pitches":[4,7,12]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.IdentifyResponse
	decode(t, w, &res)

	assert := assert.New(t)
	assert.Equal("4-7-12", res.Key)
	require.Len(t, res.Results, 1)
	assert.Equal("Cmaj", res.Results[0].Notation)
	assert.Equal("chord:maj@12:4-7-12", res.Results[0].Key)
	assert.Equal(model.Note{Pos: 12}, *res.Results[0].Tonic)
}

func TestHandleIdentifyInversion(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodPost, "/identify", `{"pitches":[4,7,12],"inversion":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.IdentifyResponse
	decode(t, w, &res)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
}

func TestHandleIdentifyScales(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodPost, "/identify", `{"pitches":[0,2,4,5,7,9,11],"scales":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.IdentifyResponse
	decode(t, w, &res)
	assert.Len(t, res.Results, 9)
}

func TestHandleIdentifyScalesInversion(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodPost, "/identify", `{"pitches":[0,2,4,5,7,9,11],"scales":true,"inversion":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.IdentifyResponse
	decode(t, w, &res)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "A minor", res.Results[0].Notation)
	assert.Equal(t, "A aeolian", res.Results[1].Notation)
}

func TestHandleIdentifyBadBody(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodPost, "/identify", `{"pitches":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMatch(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/match/E4", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res []model.MatchResult
	decode(t, w, &res)
	require.Len(t, res, 1)
	assert.Equal(t, "note", res[0].Kind)
	require.NotNil(t, res[0].Note)
	assert.Nil(t, res[0].Chord)

	w = doRequest(t, http.MethodGet, "/match/A%20minor%20pentatonic", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	require.Len(t, res, 1)
	assert.Equal(t, "scale", res[0].Kind)
	assert.Equal(t, "A minor pentatonic", res[0].Chord.Notation)

	w = doRequest(t, http.MethodGet, "/match/E5", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = nil
	decode(t, w, &res)
	require.Len(t, res, 2)
	assert.Equal(t, "note", res[0].Kind)
	assert.Equal(t, "chord", res[1].Kind)
	assert.Equal(t, "5", res[1].Chord.Name)

	w = doRequest(t, http.MethodGet, "/match/zzz", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleTemplates(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/templates/scales", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res []model.Template
	decode(t, w, &res)
	require.Len(t, res, 14)
	assert.Equal(t, "chromatic", res[0].Names[0])

	w = doRequest(t, http.MethodGet, "/templates/chord", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	assert.Len(t, res, 32)

	w = doRequest(t, http.MethodGet, "/templates/arpeggio", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestId(t *testing.T) {
	t.Parallel()

	w := doRequest(t, http.MethodGet, "/notes/C", "")
	assert.NotEmpty(t, w.Header().Get(requestIdHeader))

	req := httptest.NewRequest(http.MethodGet, "/notes/C", nil)
	req.Header.Set(requestIdHeader, "abc")
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(requestIdHeader))
}
