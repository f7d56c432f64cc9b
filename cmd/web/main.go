package main

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/giftdrop/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Parse(htmlPage))

// page is the data rendered into index.html.
type page struct {
	SSHHost string
	SSHPort string
	HasWASM bool
}

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := page{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_DISPLAY_PORT", "2222"),
	}
	wasmDir := config.GetEnv("WEB_WASM_DIR", "")

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newMux(data, wasmDir, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logger.Info("starting web server", "addr", "http://"+srv.Addr, "wasm", wasmDir != "")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// newMux serves the landing page and, when wasmDir is set, the browser
// build of the game under /play/.
func newMux(data page, wasmDir string, logger *log.Logger) *http.ServeMux {
	data.HasWASM = wasmDir != ""

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})
	if data.HasWASM {
		mux.Handle("GET /play/", http.StripPrefix("/play/", http.FileServer(http.Dir(wasmDir))))
	}
	return mux
}
