package viewstate

import "fmt"

// ConfigError indicates malformed input to Initialize.
type ConfigError struct {
	Name   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid view flags: %s", e.Reason)
	}
	return fmt.Sprintf("invalid view flag %q: %s", e.Name, e.Reason)
}

// UnknownFlagError indicates a toggle or query on a flag that was never registered.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown view flag %q", e.Name)
}
