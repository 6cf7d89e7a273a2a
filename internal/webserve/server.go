// Package webserve serves the generated dashboard site over HTTP.
package webserve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter builds the dashboard router for the given site directory.
// Requests for files missing from the site directory fall back to the
// embedded dashboard page, so a bare data.json is enough to serve.
func NewRouter(siteDir string) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/data.json", dataHandler(siteDir)).Methods("GET")
	r.PathPrefix("/").Handler(siteHandler(siteDir)).Methods("GET")

	return r
}

// Serve runs the dashboard server until ctx is cancelled.
func Serve(ctx context.Context, siteDir string, port int) error {
	router := NewRouter(siteDir)
	logged := handlers.LoggingHandler(os.Stdout, router)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           logged,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	fmt.Printf("Serving %s on http://localhost:%d\n", siteDir, port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// dataHandler serves the generated document with caching disabled, so a
// rebuild shows up on the next refresh.
func dataHandler(siteDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(siteDir, "data.json")
		if _, err := os.Stat(path); err != nil {
			http.Error(w, `{"error":"no report generated yet"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, path)
	}
}

// siteHandler serves static files from the site directory, with the embedded
// dashboard page as fallback for / and any missing file.
func siteHandler(siteDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(siteDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := filepath.Join(siteDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexPage)
	})
}
