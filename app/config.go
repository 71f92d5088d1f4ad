package app

import (
	"github.com/mgorski/filecat/models"

	"github.com/spf13/viper"
)

func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8080)
	v.SetDefault("catalog.db_path", "./data/catalog.db")
	v.SetDefault("catalog.scan_workers", 0)
	v.SetDefault("catalog.tools.image_inspector", []string{"identify", "-format", "%wx%h"})
	v.SetDefault("catalog.tools.pdf_inspector", []string{"pdfinfo"})
	v.SetDefault("catalog.tools.timeout_seconds", 30)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
