package conf

// DefaultConfig is a flat map of config keys to default values.
type DefaultConfig map[string]any
