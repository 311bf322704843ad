package main

import (
	"flag"
	"os"

	"github.com/df07/go-sphere-tracer/internal/logger"
	"github.com/df07/go-sphere-tracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log := logger.NewLogger(*logLevel)

	// Create and start web server
	webServer := server.NewServer(*port, log)

	log.Infof("Sphere Tracer Web Server")
	log.Infof("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
