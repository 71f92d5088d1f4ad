package webapp

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mgorski/filecat/app"
	"github.com/mgorski/filecat/models"
)

// WebApp is the thin presentation layer over the catalog. It only reads
// aggregate reports; scanning happens through the CLI.
type WebApp struct {
	Router     http.Handler
	AppConfig  *models.AppConfig
	ConfigPath string

	store    *app.Store
	reporter *app.Reporter
}

func (webapp *WebApp) LoadConfiguration() error {
	configPath := webapp.ConfigPath
	if configPath == "" {
		configPath = "filecat.yaml"
	}
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	webapp.AppConfig = cfg

	store, err := app.OpenStore(cfg.Catalog.DBPath)
	if err != nil {
		return err
	}
	webapp.store = store
	webapp.reporter = app.NewReporter(store)

	log.Printf("Catalog opened at %s", cfg.Catalog.DBPath)
	return nil
}

func (webapp *WebApp) Close() {
	if webapp.store != nil {
		webapp.store.Close()
	}
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}
