// Package config defines the configuration types and defaults for
// django-upgrade. A config file supplies defaults for run settings; flags
// always win over file values.
package config

// Config is the top-level configuration.
type Config struct {
	// TargetVersion is the Django version to upgrade towards, "major.minor".
	TargetVersion string `yaml:"target_version"`
	// Only restricts the run to the named fixers.
	Only []string `yaml:"only"`
	// Skip disables the named fixers.
	Skip []string `yaml:"skip"`
}

// DefaultConfig returns a Config with the default target version and no
// fixer selection.
func DefaultConfig() *Config {
	return &Config{
		TargetVersion: "2.2",
	}
}
