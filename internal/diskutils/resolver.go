package diskutils

import (
	"os"
)

// Environment variables consulted for the default storage roots.
const (
	EnvAndroidRoot     = "ANDROID_ROOT"
	EnvExternalStorage = "EXTERNAL_STORAGE"
)

// Resolver maps a Volume to the filesystem path whose statistics are read.
// No existence or permission checks are made on the returned paths.
type Resolver struct {
	InternalRoot string
	ExternalRoot string
}

// DefaultResolver builds a Resolver from the environment and platform defaults.
//
// Internal: $ANDROID_ROOT, else the platform root ("/" or %SystemDrive%\).
// External: $EXTERNAL_STORAGE, else the user's home directory, else the internal root.
func DefaultResolver() Resolver {
	internal := os.Getenv(EnvAndroidRoot)
	if internal == "" {
		internal = platformRoot()
	}

	external := os.Getenv(EnvExternalStorage)
	if external == "" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			external = home
		} else {
			external = internal
		}
	}

	return Resolver{InternalRoot: internal, ExternalRoot: external}
}

// WithOverrides returns a copy of r with the non-empty roots replaced.
func (r Resolver) WithOverrides(internalRoot, externalRoot string) Resolver {
	if internalRoot != "" {
		r.InternalRoot = internalRoot
	}
	if externalRoot != "" {
		r.ExternalRoot = externalRoot
	}
	return r
}

// Path returns the root for v. An unset external root falls back to the internal one,
// and an unset internal root to the platform root.
func (r Resolver) Path(v Volume) string {
	internal := r.InternalRoot
	if internal == "" {
		internal = platformRoot()
	}
	if v == External && r.ExternalRoot != "" {
		return r.ExternalRoot
	}
	return internal
}

// PathOrInternal returns path, or the internal root when path is empty.
func (r Resolver) PathOrInternal(path string) string {
	if path == "" {
		return r.Path(Internal)
	}
	return path
}
