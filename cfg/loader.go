package cfg

// Loader resolves the process configuration from some source
// (yaml file, hardcoded mock, ...).
type Loader interface {
	Load() (*Config, error)
}
