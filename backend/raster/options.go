package raster

import "image/color"

// Option configures a Backend during creation.
type Option func(*options)

type options struct {
	lineWidth  float32
	pointSize  float32
	lighting   bool
	background color.Color
}

func defaultOptions() options {
	return options{
		lineWidth: 1,
		pointSize: 3,
	}
}

// WithLineWidth sets the width of lines in pixels.
func WithLineWidth(w float32) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithPointSize sets the edge length of points in pixels.
func WithPointSize(s float32) Option {
	return func(o *options) {
		o.pointSize = s
	}
}

// WithLighting darkens triangles facing away from the viewer, using the
// latched normal of their first vertex and a light along +Z.
func WithLighting(enabled bool) Option {
	return func(o *options) {
		o.lighting = enabled
	}
}

// WithBackground sets the color the image is cleared to on creation.
// The default is transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
