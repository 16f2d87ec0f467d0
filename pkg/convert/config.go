package convert

// Fallback attribute values used when a node carries no explicit metadata.
// Wall defaults are configurable; the rest mirror the Pascal editor's
// built-in defaults.
const (
	DefaultWallHeight    = 2.8
	DefaultWallThickness = 0.15

	defaultDoorWidth      = 0.9
	defaultDoorHeight     = 2.1
	defaultWindowWidth    = 1.2
	defaultWindowHeight   = 1.2
	defaultColumnDiameter = 0.3
	defaultSurfaceSize    = 4.0
	defaultFloorThickness = 0.2
	defaultItemSize       = 1.0
)

// Config carries the conversion defaults. It is always passed in explicitly;
// the converter reads no global state.
type Config struct {
	DefaultWallHeight    float64 `yaml:"defaultWallHeight" json:"defaultWallHeight"`
	DefaultWallThickness float64 `yaml:"defaultWallThickness" json:"defaultWallThickness"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultWallHeight:    DefaultWallHeight,
		DefaultWallThickness: DefaultWallThickness,
	}
}

// withDefaults fills zero fields so a partially-populated Config behaves
// sensibly.
func (c Config) withDefaults() Config {
	if c.DefaultWallHeight == 0 {
		c.DefaultWallHeight = DefaultWallHeight
	}
	if c.DefaultWallThickness == 0 {
		c.DefaultWallThickness = DefaultWallThickness
	}
	return c
}
