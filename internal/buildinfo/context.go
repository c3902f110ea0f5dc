// Package buildinfo contains build-time metadata separate from user configuration
package buildinfo

import (
	"runtime"
	"runtime/debug"
)

// UnknownValue is reported for metadata that was not injected at build time.
const UnknownValue = "unknown"

// BuildInfo provides an interface for accessing build-time metadata.
type BuildInfo interface {
	// GetVersion returns the build version string
	GetVersion() string
	// GetBuildDate returns the build date string
	GetBuildDate() string
	// GetRevision returns the VCS revision the binary was built from
	GetRevision() string
}

// Context contains build-time metadata that is not user-configurable.
// Version and BuildDate are injected with -ldflags at build time.
type Context struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	Revision  string `json:"revision" yaml:"revision"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewContext creates a build context. The VCS revision and module version
// recorded by the Go toolchain fill in what ldflags did not.
func NewContext(version, buildDate string) *Context {
	c := &Context{
		Version:   version,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		c.fillFromBuildInfo(info)
	}
	return c
}

func (c *Context) fillFromBuildInfo(info *debug.BuildInfo) {
	if c.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		c.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if c.Revision == "" {
				c.Revision = s.Value
			}
		case "vcs.time":
			if c.BuildDate == "" {
				c.BuildDate = s.Value
			}
		}
	}
}

// GetVersion implements BuildInfo.GetVersion
func (c *Context) GetVersion() string {
	if c == nil || c.Version == "" {
		return UnknownValue
	}
	return c.Version
}

// GetBuildDate implements BuildInfo.GetBuildDate
func (c *Context) GetBuildDate() string {
	if c == nil || c.BuildDate == "" {
		return UnknownValue
	}
	return c.BuildDate
}

// GetRevision implements BuildInfo.GetRevision
func (c *Context) GetRevision() string {
	if c == nil || c.Revision == "" {
		return UnknownValue
	}
	return c.Revision
}
