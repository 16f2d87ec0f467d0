package pascal

// Materials lists the preset material names the Pascal editor ships with.
// Wall materialFront/materialBack should name one of these; the converter
// passes unknown names through and lets validation flag them as advisory.
var Materials = []string{
	// Special states
	"preview-valid", "preview-invalid", "delete", "ghost", "glass",
	// Solid colors
	"white", "black", "gray", "pink", "green", "blue", "red",
	"orange", "yellow", "purple",
	// Textured
	"brick", "wood", "concrete", "tile", "marble",
}

var materialSet = func() map[string]bool {
	m := make(map[string]bool, len(Materials))
	for _, name := range Materials {
		m[name] = true
	}
	return m
}()

// IsMaterial reports whether name is a known material preset.
func IsMaterial(name string) bool {
	return materialSet[name]
}
