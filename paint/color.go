// Package paint holds the opaque color reference carried by workflow events
// and commands, and the catalog of colors offered to the user.
package paint

import (
	"fmt"
	"strings"
)

// Color is an opaque reference to a paint color. Workflows never look inside
// it; they only carry it from events to commands. It is comparable so that
// states holding a Color keep structural equality.
type Color struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Hex    string `yaml:"hex"`
	Family string `yaml:"family"`
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

func (c Color) String() string {
	if c.IsZero() {
		return "<no color>"
	}

	if c.Name == "" {
		return c.ID
	}

	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

func (c Color) validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrColorIDRequired
	}

	if !isHexColor(c.Hex) {
		return fmt.Errorf("%w: %s: %q", ErrInvalidHex, c.ID, c.Hex)
	}

	return nil
}

// isHexColor accepts #RRGGBB.
func isHexColor(s string) bool {
	const hexLen = 7

	if len(s) != hexLen || s[0] != '#' {
		return false
	}

	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}
