package paint

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"facette.io/natsort"
	"gopkg.in/yaml.v3"
)

var (
	// ErrColorIDRequired indicates a catalog entry without an id.
	ErrColorIDRequired = errors.New("color id is required")
	// ErrInvalidHex indicates a catalog entry whose hex value is not #RRGGBB.
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrDuplicateColor indicates two catalog entries sharing an id.
	ErrDuplicateColor = errors.New("duplicate color id")
	// ErrEmptyCatalog indicates a catalog without colors.
	ErrEmptyCatalog = errors.New("color catalog is empty")
)

//go:embed colors.yaml
var defaultCatalog []byte

type catalogFile struct {
	Colors []Color `yaml:"colors"`
}

// Catalog is an immutable, naturally ordered set of colors.
type Catalog struct {
	colors []Color
	byID   map[string]Color
}

// DefaultCatalog returns the catalog shipped with the module.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalogFromBytes(defaultCatalog)
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read color catalog %q: %w", path, err)
	}

	return LoadCatalogFromBytes(data)
}

// LoadCatalogFromBytes parses and validates a YAML catalog.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var file catalogFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse color catalog: %w", err)
	}

	return NewCatalog(file.Colors...)
}

// NewCatalog validates the colors and orders them naturally by name, so that
// "Blue 2" sorts before "Blue 10".
func NewCatalog(colors ...Color) (*Catalog, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[string]Color, len(colors))

	for _, c := range colors {
		if err := c.validate(); err != nil {
			return nil, err
		}

		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColor, c.ID)
		}

		byID[c.ID] = c
	}

	sorted := make([]Color, len(colors))
	copy(sorted, colors)

	sort.SliceStable(sorted, func(i, j int) bool {
		return natsort.Compare(sorted[i].Name, sorted[j].Name)
	})

	return &Catalog{colors: sorted, byID: byID}, nil
}

// Colors returns the colors in natural name order.
func (c *Catalog) Colors() []Color {
	out := make([]Color, len(c.colors))
	copy(out, c.colors)

	return out
}

// Lookup finds a color by id.
func (c *Catalog) Lookup(id string) (Color, bool) {
	color, ok := c.byID[id]

	return color, ok
}

// Family returns the colors of one family, in natural name order.
func (c *Catalog) Family(family string) []Color {
	var out []Color

	for _, color := range c.colors {
		if color.Family == family {
			out = append(out, color)
		}
	}

	return out
}

// Len returns the number of colors.
func (c *Catalog) Len() int {
	return len(c.colors)
}
