package convert

import (
	"strconv"

	"github.com/pascal3d/scenebridge/pkg/scene"
)

// metaFloat reads a numeric metadata key, returning fallback when the key is
// absent or unparseable. When the fallback is used it is written back into
// the node's metadata so the next export reads the same value.
func metaFloat(n *scene.Node, key string, fallback float64) float64 {
	if raw := n.Meta(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	setMetaFloat(n, key, fallback)
	return fallback
}

// setMetaFloat stores a float metadata value in exact round-trip form.
func setMetaFloat(n *scene.Node, key string, v float64) {
	n.SetMeta(key, strconv.FormatFloat(v, 'g', -1, 64))
}
