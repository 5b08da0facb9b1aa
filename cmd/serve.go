package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/featdiibs/simple-chord-transposer/chord"
	"github.com/featdiibs/simple-chord-transposer/key"
	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/featdiibs/simple-chord-transposer/pitch"
	"github.com/featdiibs/simple-chord-transposer/transpose"
	"github.com/featdiibs/simple-chord-transposer/util"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transposer over HTTP",
	Long:  `Serves the transposer over HTTP as JSON endpoints.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, addr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("failed to write response", zap.Int("status", status), zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request body: "+err.Error())
		return false
	}
	return true
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if !decodeBody(w, r, &input) {
		return
	}

	shift := input.Shift
	if input.From != "" || input.To != "" {
		s, err := pitch.ShiftBetween(input.From, input.To)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		shift = s
	}

	res := transpose.Document(input.Text, model.Options{Shift: shift, PreferFlats: input.Flats})
	writeJSON(w, http.StatusOK, model.TransposeResponse{
		Plain:     res.Plain,
		Annotated: res.Annotated,
		Shift:     util.Mod(shift, 12),
	})
}

func HandleKey(w http.ResponseWriter, r *http.Request) {
	var input model.KeyRequestBody
	if !decodeBody(w, r, &input) {
		return
	}

	var res model.KeyResponse
	if k, ok := key.Suggest(input.Text, input.Flats); ok {
		res.Key = &k
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.KeysResponse{Keys: pitch.KeyNames})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	c, ok := chord.Parse(token)
	if !ok {
		writeError(w, http.StatusNotFound, "Not a chord: "+token)
		return
	}

	q := r.URL.Query()
	var shift int
	if s := q.Get("shift"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid shift: "+s)
			return
		}
		shift = n
	}
	flats, _ := strconv.ParseBool(q.Get("flats"))

	writeJSON(w, http.StatusOK, model.ChordResponse{
		Token:      token,
		Root:       c.Root,
		Suffix:     c.Suffix,
		Bass:       c.Bass,
		Transposed: chord.Transpose(token, shift, flats),
	})
}

// withRequestID tags every request with an ID and logs it once served.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func NewRouter(allowedOrigins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/key", HandleKey).Methods("POST")
	router.HandleFunc("/keys", HandleKeys).Methods("GET")
	router.HandleFunc("/chord/{token:.+}", HandleChord).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return withRequestID(c.Handler(router))
}

func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
