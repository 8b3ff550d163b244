// Command attractor-server serves an interactive visualizer for the sin/cos
// curve-evolution engine.
//
// It exposes an HTML dashboard with a phase-space chart of a chosen iteration
// frame and a chart of the shape metrics across iterations, a JSON and CSV
// trajectory API for external renderers, and a websocket frame stream for
// animation playback. All parameters arrive as query parameters; nothing is
// persisted between requests.
//
// Usage:
//
//	go run ./cmd/attractor-server [flags]
//
// Flags:
//
//	-addr  Listen address (default: localhost:8080)
package main

import (
	"flag"
	"log"
	"net/http"
	"time"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "Listen address")
	flag.Parse()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newServer().routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
