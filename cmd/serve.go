package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/logger"
	"github.com/jsphweid/tonal/match"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long: `Serves the JSON API:
  GET  /notes/{notation}
  GET  /chords/{notation}
  GET  /scales/{notation}
  GET  /match/{text}
  GET  /templates/{kind}
  POST /identify`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(addr)
	},
}

const requestIdHeader = "X-Request-Id"

// NewRouter wires every route with request ids, logging and CORS.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notes/{notation:.+}", HandleNote).Methods("GET")
	router.HandleFunc("/chords/{notation:.+}", HandleChord).Methods("GET")
	router.HandleFunc("/scales/{notation:.+}", HandleScale).Methods("GET")
	router.HandleFunc("/match/{text:.+}", HandleMatch).Methods("GET")
	router.HandleFunc("/templates/{kind}", HandleTemplates).Methods("GET")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.Use(requestId, logRequests)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{requestIdHeader},
	}).Handler(router)
}

func serve(addr string) error {
	logger.GetProjectLogger().Infof("listening on %s", addr)
	return http.ListenAndServe(addr, NewRouter())
}

func requestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIdHeader, id)
		}
		w.Header().Set(requestIdHeader, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.GetProjectLogger().
			WithFields(logrus.Fields{"id": r.Header.Get(requestIdHeader), "status": rec.status, "took": time.Since(start)}).
			Infof("%s %s", r.Method, r.URL.Path)
	})
}

// flatsFor reads the "flats" query parameter, falling back to the configured
// default.
func flatsFor(r *http.Request) bool {
	if v, err := strconv.ParseBool(r.URL.Query().Get("flats")); err == nil {
		return v
	}
	return constants.GetPreferFlats()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.GetProjectLogger().WithError(err).Error("could not encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, note.ErrParse), errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, chord.ErrNotFound), errors.Is(err, errUnknownCategory), errors.Is(err, errNoMatch):
		status = http.StatusNotFound
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

var (
	errBadRequest = errors.New("bad request")
	errNoMatch    = errors.New("no match")
)

func HandleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.FromNotation(mux.Vars(r)["notation"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteInfo(n, flatsFor(r)))
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	handleNotation(w, r, chord.KindChord)
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	handleNotation(w, r, chord.KindScale)
}

func handleNotation(w http.ResponseWriter, r *http.Request, kind chord.Kind) {
	c, err := chord.FromNotationKind(mux.Vars(r)["notation"], kind)
	if err != nil {
		writeError(w, err)
		return
	}
	if t := r.URL.Query().Get("transpose"); t != "" {
		semitones, err := strconv.Atoi(t)
		if err != nil {
			writeError(w, errors.Wrapf(errBadRequest, "transpose %q", t))
			return
		}
		c = c.Transpose(interval.FromSemitones(semitones))
	}
	writeJSON(w, http.StatusOK, toChordModel(c, flatsFor(r)))
}

func HandleMatch(w http.ResponseWriter, r *http.Request) {
	text := mux.Vars(r)["text"]
	res := match.Find(text)
	if len(res) == 0 {
		writeError(w, errors.Wrapf(errNoMatch, "%q", text))
		return
	}
	flats := flatsFor(r)
	out := make([]model.MatchResult, len(res))
	for i, m := range res {
		out[i] = toMatchResult(m, flats)
	}
	writeJSON(w, http.StatusOK, out)
}

func HandleTemplates(w http.ResponseWriter, r *http.Request) {
	table, err := tableFor(mux.Vars(r)["kind"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateModels(table))
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.Wrapf(errBadRequest, "could not decode request body: %v", err))
		return
	}

	inv := -1
	if input.Inversion != nil {
		inv = *input.Inversion
	}
	res := identify(input.Pitches, inv, input.Scales)
	writeJSON(w, http.StatusOK, model.IdentifyResponse{
		Key:     chord.CreateChordKey(input.Pitches),
		Results: toChordModels(res, flatsFor(r)),
	})
}
