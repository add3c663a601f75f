package chartdata

import "fmt"

// ConfigurationError reports invalid caller-supplied configuration (empty or
// unsorted color scale, unknown scale name, non-positive chunk size). It is
// fatal to the offending call only.
type ConfigurationError struct {
	Op     string // operation that rejected the input
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ConfigErrorf builds a ConfigurationError for op.
func ConfigErrorf(op, format string, args ...interface{}) error {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
