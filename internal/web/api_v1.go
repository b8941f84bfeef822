package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/rook-computer/lvconf/internal/display"
	"github.com/rook-computer/lvconf/internal/fonts"
	"github.com/rook-computer/lvconf/internal/lvconf"
	"github.com/rook-computer/lvconf/internal/render"
)

const maxCardSide = 2048

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type optionResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Define   string `json:"define"`
}

type configResponse struct {
	Fingerprint    string   `json:"fingerprint"`
	Options        int      `json:"options"`
	OS             string   `json:"os"`
	ColorDepth     int      `json:"colorDepth"`
	Format         string   `json:"format"`
	Display        string   `json:"display"`
	DefaultFont    string   `json:"defaultFont"`
	EnabledFonts   []string `json:"enabledFonts"`
	EnabledWidgets []string `json:"enabledWidgets"`
}

// APIV1 serves a read-only view of one configuration set.
type APIV1 struct {
	Set *lvconf.Set
	// Fonts backs /testcard.png; without it the route answers 501.
	Fonts *fonts.Registry

	// Faces are not safe for concurrent use.
	renderMu sync.Mutex
}

// NewMux mounts the API under /api/v1/. DevMode adds permissive CORS.
func NewMux(api *APIV1, cfg ServerConfig) http.Handler {
	r := chi.NewRouter()
	r.Mount("/api/v1", api.Router())
	if cfg.DevMode {
		return WithDevCORS(r)
	}
	return r
}

// Router serves every route for GET and HEAD only.
func (a *APIV1) Router() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeAPIError(w, http.StatusNotFound, "not_found", "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", "GET, HEAD")
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	read := func(pattern string, h http.HandlerFunc) {
		r.Get(pattern, h)
		r.Head(pattern, h)
	}
	read("/config", a.handleConfig)
	read("/options", a.handleOptions)
	read("/options/{name}", a.handleOption)
	read("/header", a.handleHeader)
	read("/testcard.png", a.handleTestCard)
	return r
}

func (a *APIV1) handleConfig(w http.ResponseWriter, r *http.Request) {
	set := a.Set
	cfg := set.Config()
	resp := configResponse{
		Fingerprint: set.Fingerprint(),
		Options:     set.Len(),
		OS:          cfg.OS.String(),
		ColorDepth:  set.ColorDepth(),
		Format:      display.FormatOf(set).String(),
		Display:     set.Display().String(),
		DefaultFont: set.DefaultFont().Name(),
	}
	for _, id := range set.EnabledFonts() {
		resp.EnabledFonts = append(resp.EnabledFonts, id.Name())
	}
	for _, wd := range set.EnabledWidgets() {
		resp.EnabledWidgets = append(resp.EnabledWidgets, wd.Key())
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleOptions lists every option in header order, optionally filtered
// by ?category=.
func (a *APIV1) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts := a.Set.Options()
	if cat := r.URL.Query().Get("category"); cat != "" {
		opts = a.Set.Category(lvconf.Category(cat))
		if len(opts) == 0 {
			writeAPIError(w, http.StatusNotFound, "unknown_category", "no options in category "+cat)
			return
		}
	}
	out := make([]optionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, toOptionResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *APIV1) handleOption(w http.ResponseWriter, r *http.Request) {
	o, err := a.Set.Option(chi.URLParam(r, "name"))
	if errors.Is(err, lvconf.ErrMissingOption) {
		writeAPIError(w, http.StatusNotFound, "unknown_option", err.Error())
		return
	}
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "lookup_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toOptionResponse(o))
}

func (a *APIV1) handleHeader(w http.ResponseWriter, r *http.Request) {
	etag := `"` + a.Set.Fingerprint() + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	var buf bytes.Buffer
	if err := lvconf.WriteHeader(&buf, a.Set); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "header_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/x-c; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lv_conf.h"`)
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

// handleTestCard renders the card as the panel would show it.
// ?width= and ?height= default to the stock panel; ?raw=1 skips quantizing.
func (a *APIV1) handleTestCard(w http.ResponseWriter, r *http.Request) {
	if a.Fonts == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "fonts not configured")
		return
	}
	q := r.URL.Query()
	width, err := intParam(q.Get("width"), render.DefaultWidth)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_width", err.Error())
		return
	}
	height, err := intParam(q.Get("height"), render.DefaultHeight)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_height", err.Error())
		return
	}
	raw := false
	if s := q.Get("raw"); s != "" {
		if raw, err = strconv.ParseBool(s); err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_raw", err.Error())
			return
		}
	}

	a.renderMu.Lock()
	card, err := render.TestCard(a.Set, a.Fonts, width, height)
	a.renderMu.Unlock()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	var buf bytes.Buffer
	if raw {
		err = png.Encode(&buf, card.Image)
	} else {
		sim, serr := display.Simulate(card.Image, display.FormatOf(a.Set))
		if serr != nil {
			writeAPIError(w, http.StatusInternalServerError, "render_failed", serr.Error())
			return
		}
		err = png.Encode(&buf, sim)
	}
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

func toOptionResponse(o lvconf.Option) optionResponse {
	return optionResponse{
		Name:     o.Name,
		Category: string(o.Category),
		Kind:     o.Value.Kind.String(),
		Value:    o.Value.String(),
		Define:   o.Value.Define(),
	}
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 || n > maxCardSide {
		return 0, errors.New("must be between 1 and " + strconv.Itoa(maxCardSide))
	}
	return n, nil
}

func writeAPIError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, apiError{Error: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
