package config

// Default configuration values.
const (
	DefaultVaultEngine = "memory"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	DefaultPrecision = 4
	MaxPrecision     = 15
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Vault: VaultSection{
			Engine: DefaultVaultEngine,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Display: DisplaySection{
			Precision: DefaultPrecision,
		},
	}
}
