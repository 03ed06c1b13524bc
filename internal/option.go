package internal

// Option configures the sidecar before Run or RunMCP starts it.
type Option func(*application)

// application collects the wiring choices for one sidecar instance.
type application struct {
	config *Config
}

// WithConfig supplies the sidecar configuration: vault root, index and
// settings file locations, HTTP address, and auth mode.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}
