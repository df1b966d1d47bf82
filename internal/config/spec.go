package config

// Config is the root configuration for unityvault.
type Config struct {
	Vault   VaultSection   `koanf:"vault" json:"vault" yaml:"vault"`
	Log     LogSection     `koanf:"log" json:"log" yaml:"log"`
	Metrics MetricsSection `koanf:"metrics" json:"metrics" yaml:"metrics"`
	Display DisplaySection `koanf:"display" json:"display" yaml:"display"`
}

// VaultSection selects the vault backend.
type VaultSection struct {
	// Engine is "memory" or "badger". Both keep data in process memory only.
	Engine string `koanf:"engine" json:"engine" yaml:"engine"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	// Addr is the listen address for /metrics. Empty disables the endpoint.
	Addr string `koanf:"addr" json:"addr" yaml:"addr"`
}

// DisplaySection configures how tokens are rendered.
type DisplaySection struct {
	// Precision is the number of decimals shown for token components.
	// Signatures stored in the vault always use four.
	Precision int `koanf:"precision" json:"precision" yaml:"precision"`
}
