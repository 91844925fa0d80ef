package drawgl

// DrawerOption configures a Drawer during creation.
//
// Example:
//
//	// Validated drawing (default)
//	d := drawgl.NewDrawer(backend)
//
//	// Trust the caller on a hot path
//	d := drawgl.NewDrawer(backend, drawgl.WithValidation(false))
type DrawerOption func(*drawerOptions)

// drawerOptions holds optional configuration for Drawer creation.
type drawerOptions struct {
	validate   bool
	lighting   bool
	coordsOnly bool
}

// defaultDrawerOptions returns the default drawer options.
func defaultDrawerOptions() drawerOptions {
	return drawerOptions{
		validate: true,
	}
}

// WithValidation enables or disables buffer validation.
//
// With validation enabled (the default) every draw call checks buffer
// shapes, element indices and alpha before touching the backend and
// returns an error instead of drawing. With validation disabled the caller
// guarantees well-formed input; a malformed buffer panics mid-batch, after
// the batch has been closed.
func WithValidation(enabled bool) DrawerOption {
	return func(o *drawerOptions) {
		o.validate = enabled
	}
}

// WithLighting makes the Drawer compute flat face normals for filled
// draws (triangles, quads and polygons) that were called without normals.
// Outline and point modes are left unlit.
func WithLighting(enabled bool) DrawerOption {
	return func(o *drawerOptions) {
		o.lighting = enabled
	}
}

// WithCoordinateOnlyElements makes element draws ignore their normal and
// color buffers and submit coordinates only, reproducing the output of
// older indexed renderers.
func WithCoordinateOnlyElements() DrawerOption {
	return func(o *drawerOptions) {
		o.coordsOnly = true
	}
}
