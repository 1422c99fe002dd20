package config

// DefaultIndexFile is the index tree file name used when a project leaves Index empty.
const DefaultIndexFile = "index.yaml"

func applyDefaults(cfg *Config) {
	for i := range cfg.Projects {
		if cfg.Projects[i].Index == "" {
			cfg.Projects[i].Index = DefaultIndexFile
		}
	}
	if cfg.Default == "" && len(cfg.Projects) > 0 {
		cfg.Default = cfg.Projects[0].Name
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
