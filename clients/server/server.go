// Package server provides the GoVeil web UI and HTTP API.
package server

import (
	"bytes"
	"embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/xob0t/GoVeil/pkg/codec"
	"github.com/xob0t/GoVeil/pkg/cover"
	"github.com/xob0t/GoVeil/pkg/stego"
)

//go:embed web/*
var webContent embed.FS

const maxUploadBytes = 64 << 20

// RunServe starts the web UI server on the given port.
func RunServe(args []string) error {
	port := "8080"
	for i, a := range args {
		if (a == "--port" || a == "-p") && i+1 < len(args) {
			port = args[i+1]
		}
	}

	webFS, err := fs.Sub(webContent, "web")
	if err != nil {
		return fmt.Errorf("embed web: %w", err)
	}

	mux := newMux()
	mux.Handle("/", http.FileServer(http.FS(webFS)))

	addr := ":" + port
	log.Printf("GoVeil UI → http://localhost%s", addr)

	// Open browser.
	go openBrowser("http://localhost" + addr)

	return http.ListenAndServe(addr, mux)
}

// newMux wires the API routes. Handlers are stateless: every request owns
// its own buffers and engine session, so concurrent calls never interact.
func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/hide", handleHide)
	mux.HandleFunc("POST /api/unveil", handleUnveil)
	mux.HandleFunc("POST /api/capacity", handleCapacity)
	mux.HandleFunc("POST /api/cover", handleCover)
	return mux
}

// ── Hide ──

func handleHide(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	carrier, _, err := formFileBytes(r, "carrier")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	secret, secretName, err := formFileBytes(r, "secret")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = filepath.Base(secretName)
	}

	out, err := stego.Hide(carrier, name, secret, stego.Options{
		Password:    r.FormValue("password"),
		AllowResize: formBool(r, "resize"),
		Format:      r.FormValue("format"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := codec.ParseFormat(r.FormValue("format"))
	w.Header().Set("Content-Type", format.MIME())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="hidden.%s"`, format.Extension()))
	w.Write(out)
}

// ── Unveil ──

func handleUnveil(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	carrier, _, err := formFileBytes(r, "carrier")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := stego.Unveil(carrier, r.FormValue("password"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type unveiledFile struct {
		Name string `json:"name"`
		Size int    `json:"size"`
		Data string `json:"data"`
	}
	resp := make([]unveiledFile, 0, len(files))
	for _, f := range files {
		resp = append(resp, unveiledFile{
			Name: f.Name,
			Size: len(f.Data),
			Data: base64.StdEncoding.EncodeToString(f.Data),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ── Capacity ──

func handleCapacity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	carrier, _, err := formFileBytes(r, "carrier")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg, formatName, err := codec.DecodeConfig(carrier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, _ := strconv.Atoi(r.FormValue("payload"))
	d := stego.PlanCapacity(cfg.Width, cfg.Height, payload, formBool(r, "resize"))

	resp := map[string]interface{}{
		"format":   formatName,
		"width":    cfg.Width,
		"height":   cfg.Height,
		"capacity": d.Capacity,
		"required": d.Required,
	}
	switch d.Verdict {
	case stego.Sufficient:
		resp["verdict"] = "sufficient"
	case stego.RequiresResize:
		resp["verdict"] = "requires_resize"
		resp["targetWidth"] = d.TargetWidth
		resp["targetHeight"] = d.TargetHeight
	case stego.Infeasible:
		resp["verdict"] = "infeasible"
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ── Cover ──

func handleCover(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Width   int    `json:"width"`
		Height  int    `json:"height"`
		Color   string `json:"color"`
		Payload int    `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	cfg := cover.Config{
		Width:   req.Width,
		Height:  req.Height,
		Color:   req.Color,
		Payload: req.Payload,
	}
	if err := cover.GenerateToWriter(&buf, ".png", cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="cover.png"`)
	w.Write(buf.Bytes())
}

// ── Helpers ──

func formFileBytes(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("missing %s file", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("read %s file: %w", field, err)
	}
	return data, header.Filename, nil
}

func formBool(r *http.Request, field string) bool {
	switch strings.ToLower(r.FormValue(field)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	cmd.Start()
}
