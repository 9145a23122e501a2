package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	applicationNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	packageNamePattern     = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)*$`)
	coordinatePattern      = regexp.MustCompile(`^[A-Za-z0-9_.+-]+$`)
)

// ValidApplicationName reports whether name can be used as an application name.
func ValidApplicationName(name string) bool {
	return applicationNamePattern.MatchString(name)
}

// Validate checks the config before any filesystem mutation happens.
// Every failure is a configuration error.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ApplicationName) == "" {
		return NewConfigurationError("validate", "application name is required")
	}
	if !ValidApplicationName(c.ApplicationName) {
		return NewConfigurationError("validate",
			"application name must start with letter and contain only alphanumeric characters")
	}
	if c.Framework == "" {
		return NewConfigurationError("validate", "framework type is required")
	}
	if !c.Framework.Supported() {
		return NewConfigurationError("validate", "framework must be "+string(FrameworkSpringBoot))
	}
	if c.Database == "" {
		return NewConfigurationError("validate", "database type is required")
	}
	if !c.Database.Valid() {
		return NewConfigurationError("validate", fmt.Sprintf("unknown database type %q", c.Database))
	}
	if c.PackageName != "" && !packageNamePattern.MatchString(c.PackageName) {
		return NewConfigurationError("validate", fmt.Sprintf("invalid package name %q", c.PackageName))
	}
	coordinates := []struct{ field, value string }{
		{"group id", c.GroupID},
		{"artifact id", c.ArtifactID},
		{"version", c.Version},
		{"java version", c.JavaVersion},
	}
	for _, co := range coordinates {
		if co.value != "" && !coordinatePattern.MatchString(co.value) {
			return NewConfigurationError("validate", fmt.Sprintf("invalid %s %q", co.field, co.value))
		}
	}
	return nil
}
