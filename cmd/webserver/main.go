package main

import (
	"flag"
	"log"
	"net/http"

	webapp "github.com/mgorski/filecat/web/run"
)

func main() {
	configPath := flag.String("config", "filecat.yaml", "Path to configuration file")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	flag.Parse()

	web := webapp.WebApp{
		ConfigPath: *configPath,
	}
	if err := web.LoadConfiguration(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer web.Close()

	addr := web.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, web.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
