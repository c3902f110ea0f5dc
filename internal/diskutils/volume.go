package diskutils

import (
	"fmt"
	"strings"

	"github.com/tphakala/diskutils/internal/errors"
)

// Volume selects one of the two well-known storage roots.
type Volume int

const (
	// Internal is the device's primary storage. It is the zero value.
	Internal Volume = iota
	// External is removable or shared user storage.
	External
)

// VolumeFromBool maps the boolean selector form, where true means external storage.
func VolumeFromBool(external bool) Volume {
	if external {
		return External
	}
	return Internal
}

// ParseVolume accepts "internal" or "external", case-insensitively.
func ParseVolume(s string) (Volume, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "internal":
		return Internal, nil
	case "external":
		return External, nil
	default:
		return Internal, errors.Newf("unknown volume %q: must be internal or external", s).
			Component("diskutils").
			Category(errors.CategoryValidation).
			Context("volume", s).
			Build()
	}
}

func (v Volume) String() string {
	switch v {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return fmt.Sprintf("volume(%d)", int(v))
	}
}

// MarshalText renders the volume name in JSON and YAML output.
func (v Volume) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a volume name.
func (v *Volume) UnmarshalText(text []byte) error {
	parsed, err := ParseVolume(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
