// aetheriad serves the render-analysis pipeline over HTTP, mirroring the
// routes of the original Aetheria backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"aetheria/pkg/aetheria"
	"aetheria/pkg/vision"
)

const maxUploadBytes = 12 << 20 // 12MB, same cap as the original backend

type server struct {
	analyzer *aetheria.Analyzer
	vision   *vision.Client // nil when no API key is configured
}

func main() {
	port := flag.Int("port", defaultPort(), "listen port")
	flag.Parse()

	srv := &server{analyzer: aetheria.NewAnalyzer()}
	if client, err := vision.NewClient("", ""); err == nil {
		srv.vision = client
	} else {
		log.Printf("vision client disabled: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ping", srv.handlePing)
	mux.HandleFunc("POST /api/analyze_render", srv.handleAnalyzeRender)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Starting Aetheria backend on http://0.0.0.0%s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

func defaultPort() int {
	if v := os.Getenv("AETHERIA_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			return port
		}
	}
	return 5001
}

func (s *server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "Aetheria Backend"})
}

// handleAnalyzeRender accepts multipart form fields:
//   - render: required image
//   - reference: optional image
//   - ai: "1" to describe the render with the vision model
func (s *server) handleAnalyzeRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid multipart form"})
		return
	}

	renderBytes, ok := formFileBytes(r, "render")
	if !ok {
		// Missing required input is the one hard failure the boundary owns.
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing file field 'render'"})
		return
	}
	referenceBytes, _ := formFileBytes(r, "reference")

	var externalText string
	if r.FormValue("ai") == "1" && s.vision != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
		defer cancel()
		text, err := s.vision.Describe(ctx, renderBytes)
		if err != nil {
			log.Printf("vision description failed, using palette matcher: %v", err)
		} else {
			externalText = text
		}
	}

	result := s.analyzer.AnalyzeRender(renderBytes, referenceBytes, externalText)
	writeJSON(w, http.StatusOK, result)
}

func formFileBytes(r *http.Request, field string) ([]byte, bool) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}
