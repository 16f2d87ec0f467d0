// Package scene defines the host-side generic scene tree. A scene.Node is
// the untyped Blender-equivalent object: a name, a geometry kind, a local
// transform, ordered children, and a free-form metadata bag carrying the
// Pascal passthrough keys.
package scene
