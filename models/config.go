package models

type ToolsConfig struct {
	// Command lines for the external inspectors. First element is the
	// binary, the rest are arguments; the file path is appended last.
	ImageInspector []string `mapstructure:"image_inspector"`
	PDFInspector   []string `mapstructure:"pdf_inspector"`
	// Per-file timeout in seconds for a single inspector invocation.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type CatalogConfig struct {
	DBPath       string      `mapstructure:"db_path"`
	ExcludePaths []string    `mapstructure:"exclude_paths"`
	ScanWorkers  int         `mapstructure:"scan_workers"` // 0 = auto (NumCPU)
	Tools        ToolsConfig `mapstructure:"tools"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}
