// Package convert implements the bidirectional tree conversion between the
// host scene tree (pkg/scene) and the Pascal document model (pkg/pascal).
//
// Export walks the host tree depth-first, classifies each node, and emits a
// typed tree. Untyped organizational containers are flattened: their
// children attach to the nearest typed ancestor with the container's local
// transform composed in, so world placement is preserved. Import is the
// mirror walk; nothing is flattened on the way back, and every attribute is
// written into host metadata so a later export reproduces the document.
package convert
