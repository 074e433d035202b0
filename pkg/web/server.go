package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pterm/pterm"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/gears"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/preset"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/xmlgen"
)

//go:embed templates/*
var templates embed.FS

// Server hosts the local web preview. It shares a preset store with the
// rest of the tool; handlers run concurrently, which is why the store
// carries a lock.
type Server struct {
	store *preset.Store
	port  int
}

// NewServer returns a preview server on the given port
func NewServer(store *preset.Store, port int) *Server {
	return &Server{store: store, port: port}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/presets", s.handlePresets)
	mux.HandleFunc("/api/engine", s.handleEngine)
	mux.HandleFunc("/api/transmission", s.handleTransmission)
	mux.HandleFunc("/api/combined", s.handleCombined)
	return mux
}

// Start serves until the process is interrupted.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	url := fmt.Sprintf("http://localhost%s", addr)

	pterm.DefaultHeader.WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("FS25 Config Web Preview")

	pterm.Info.Printf("Opening web interface at %s\n", url)
	pterm.Info.Println("Press Ctrl+C to stop the server")
	pterm.Println()

	openBrowser(url)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	content, err := templates.ReadFile("templates/index.html")
	if err != nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"engines":       models.EnginePresets,
		"transmissions": models.TransmissionPresets,
		"session":       s.store.Names(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type curvePoint struct {
	RPM         float64 `json:"rpm"`
	NormRPM     float64 `json:"norm_rpm"`
	Torque      float64 `json:"torque"`
	TorqueScale float64 `json:"torque_scale"`
}

func (s *Server) handleEngine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var e models.EngineSpec
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	doc, err := xmlgen.Engine(e)
	if err != nil {
		writeError(w, err)
		return
	}

	curve, err := torque.FromSpec(e)
	if err != nil {
		writeError(w, err)
		return
	}

	points := make([]curvePoint, torque.Samples)
	for i, p := range curve.Points() {
		points[i] = curvePoint{
			RPM:         curve.RPM[i],
			NormRPM:     p.NormRPM,
			Torque:      curve.Torque[i],
			TorqueScale: p.TorqueScale,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"xml":   doc,
		"curve": points,
	})
}

func (s *Server) handleTransmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var t models.TransmissionSpec
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	doc, err := xmlgen.Transmission(t)
	if err != nil {
		writeError(w, err)
		return
	}

	table, err := gears.Calculate(t)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"xml":     doc,
		"forward": table.Forward,
		"reverse": table.Reverse,
	})
}

func (s *Server) handleCombined(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var p preset.Pair
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	doc, err := xmlgen.Combined(p.Engine, p.Transmission)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"xml": doc})
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *models.InvalidInputError
	if errors.As(err, &invalid) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
