package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/chordscales/chord"
	"github.com/jsphweid/chordscales/constants"
	"github.com/jsphweid/chordscales/file"
	"github.com/jsphweid/chordscales/model"
	"github.com/jsphweid/chordscales/scale"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to listen on (env ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord scale midi files over http",
	Long: `Serves chord scale midi files over http, rendered on demand.
The tempo, seconds and velocity query parameters override the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		log.Info("serving", zap.String("addr", addr))
		return http.ListenAndServe(addr, NewHandler())
	},
}

func NewHandler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scales", HandleScales).Methods(http.MethodGet)
	router.HandleFunc("/chords", HandleChords).Methods(http.MethodGet)
	router.HandleFunc("/scales/{scale}", HandleScaleFile).Methods(http.MethodGet)
	router.HandleFunc("/scales/{scale}/chords/{degree}", HandleChordFile).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("Could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func writeMidi(w http.ResponseWriter, rendered file.Rendered) {
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Name+constants.MidiFileSuffix))
	w.WriteHeader(http.StatusOK)
	w.Write(rendered.Bytes)
}

func settingsFromQuery(r *http.Request) (model.Settings, error) {
	s := model.DefaultSettings()
	q := r.URL.Query()
	fields := []struct {
		key string
		dst *int
	}{
		{"tempo", &s.Tempo},
		{"seconds", &s.Seconds},
		{"velocity", &s.Velocity},
	}
	for _, f := range fields {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return s, errors.Errorf("%v must be an integer, got %q", f.key, raw)
		}
		*f.dst = n
	}
	return s, s.Validate()
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ScaleResult, 0, len(scale.All))
	for _, s := range scale.All {
		chords := s.Chords
		res = append(res, model.ScaleResult{Name: s.Name, Chords: chords[:]})
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	labels := chord.Labels()
	res := make([]model.ChordResult, 0, len(labels))
	for _, label := range labels {
		c := chord.Table[label]
		res = append(res, model.ChordResult{Label: c.Label, Quality: c.Quality.String(), Notes: c.Notes})
	}
	writeJSON(w, http.StatusOK, res)
}

func lookupScale(w http.ResponseWriter, r *http.Request) (scale.Scale, model.Settings, bool) {
	s, err := scale.Lookup(mux.Vars(r)["scale"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return s, model.Settings{}, false
	}
	settings, err := settingsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return s, settings, false
	}
	return s, settings, true
}

func HandleScaleFile(w http.ResponseWriter, r *http.Request) {
	s, settings, ok := lookupScale(w, r)
	if !ok {
		return
	}
	rendered, err := file.RenderScale(s, settings)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, skipped := range rendered.Skipped {
		log.Warn("chord left out of scale file", zap.String("scale", s.Name), zap.Error(skipped))
	}
	writeMidi(w, rendered)
}

func HandleChordFile(w http.ResponseWriter, r *http.Request) {
	s, settings, ok := lookupScale(w, r)
	if !ok {
		return
	}
	degree, err := strconv.Atoi(mux.Vars(r)["degree"])
	if err != nil || degree < 1 || degree > scale.Degrees {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("degree must be within 1-%d", scale.Degrees))
		return
	}

	rendered, err := file.RenderChord(degree, s.Chords[degree-1], settings)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, skipped := range rendered.Skipped {
		log.Error("Error at "+rendered.Name, zap.String("scale", s.Name), zap.Error(skipped))
	}
	writeMidi(w, rendered)
}
