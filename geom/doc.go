// Package geom provides small geometry helpers for drawgl buffers:
// flat face normals and bounding boxes over flat float32 coordinate data.
package geom
