// Package version provides version information for the initializr.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	Version   = "v0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// SpringBootVersion is the Spring Boot parent version generated projects use.
const SpringBootVersion = "3.2.0"

// Info contains version information.
type Info struct {
	Version           string `json:"version"`
	GitCommit         string `json:"gitCommit"`
	BuildDate         string `json:"buildDate"`
	GoVersion         string `json:"goVersion"`
	SpringBootVersion string `json:"springBootVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:           Version,
		GitCommit:         GitCommit,
		BuildDate:         BuildDate,
		GoVersion:         runtime.Version(),
		SpringBootVersion: SpringBootVersion,
	}
}

// String renders the info the way `initializr version` prints it.
func (i Info) String() string {
	return fmt.Sprintf("initializr %s\n  commit:      %s\n  built:       %s\n  go:          %s\n  spring boot: %s\n",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.SpringBootVersion)
}
