package linematch

// ConfigError represents an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "linematch: invalid config: " + e.Field + ": " + e.Message
}
