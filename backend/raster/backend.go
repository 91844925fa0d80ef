package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/gogpu/drawgl"
	"github.com/gogpu/drawgl/geom"
	"github.com/gogpu/drawgl/internal/assemble"
)

// Default dimensions of backends created through the registry.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

func init() {
	drawgl.Register("raster", func() drawgl.Backend {
		return NewBackend(DefaultWidth, DefaultHeight)
	})
}

// vertex is a submitted vertex with its latched state.
type vertex struct {
	pos    f32.Vec3
	normal f32.Vec3
	color  f32.Vec4
}

// Backend rasterizes primitive streams into an image.
// It implements drawgl.Backend.
//
// The Backend is not safe for concurrent use.
type Backend struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	view    f32.Aff3
	opts    options
	normal  f32.Vec3
	color   f32.Vec4
	mode    drawgl.Mode
	pending []vertex
	tex     gpucontext.Texture
	logger  *slog.Logger
}

var _ drawgl.Backend = (*Backend)(nil)

// NewBackend creates a raster backend of the given size. The view
// initially maps [-1, 1] x [-1, 1] onto the image.
func NewBackend(width, height int, opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Backend{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		z:      vector.NewRasterizer(width, height),
		opts:   o,
		normal: f32.Vec3{0, 0, 1},
		color:  f32.Vec4{1, 1, 1, 1},
		logger: drawgl.Logger(),
	}
	b.SetView(-1, -1, 1, 1)
	if o.background != nil {
		b.Clear(o.background)
	}
	return b
}

// SetLogger sets the logger used to report dropped primitives.
func (b *Backend) SetLogger(l *slog.Logger) {
	if l == nil {
		l = drawgl.Logger()
	}
	b.logger = l
}

// SetView maps the world rectangle [minX, maxX] x [minY, maxY] onto the
// whole image, with Y pointing up. The mapping is stretched, not fitted;
// see FitView to keep the aspect ratio.
func (b *Backend) SetView(minX, minY, maxX, maxY float32) {
	w, h := float32(b.img.Rect.Dx()), float32(b.img.Rect.Dy())
	sx, sy := float32(1), float32(1)
	if maxX != minX {
		sx = w / (maxX - minX)
	}
	if maxY != minY {
		sy = h / (maxY - minY)
	}
	b.view = f32.Aff3{
		sx, 0, -minX * sx,
		0, -sy, maxY * sy,
	}
}

// FitView centers the bounding box [lo, hi] in the image with a uniform
// scale and the given margin in pixels.
func (b *Backend) FitView(lo, hi f32.Vec3, margin float32) {
	w := float32(b.img.Rect.Dx()) - 2*margin
	h := float32(b.img.Rect.Dy()) - 2*margin
	dx, dy := hi[0]-lo[0], hi[1]-lo[1]
	s := float32(1)
	switch {
	case dx > 0 && dy > 0:
		s = math32.Min(w/dx, h/dy)
	case dx > 0:
		s = w / dx
	case dy > 0:
		s = h / dy
	}
	cx, cy := (lo[0]+hi[0])/2, (lo[1]+hi[1])/2
	px, py := float32(b.img.Rect.Dx())/2, float32(b.img.Rect.Dy())/2
	b.view = f32.Aff3{
		s, 0, px - s*cx,
		0, -s, py + s*cy,
	}
}

// Clear fills the whole image with c.
func (b *Backend) Clear(c color.Color) {
	draw.Draw(b.img, b.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Begin implements drawgl.Backend.
func (b *Backend) Begin(mode drawgl.Mode) {
	b.mode = mode
	b.pending = b.pending[:0]
}

// Vertex implements drawgl.Backend.
func (b *Backend) Vertex(v f32.Vec3) {
	b.pending = append(b.pending, vertex{pos: v, normal: b.normal, color: b.color})
}

// Normal implements drawgl.Backend.
func (b *Backend) Normal(n f32.Vec3) { b.normal = n }

// Color3 implements drawgl.Backend.
func (b *Backend) Color3(c f32.Vec3) { b.color = f32.Vec4{c[0], c[1], c[2], 1} }

// Color4 implements drawgl.Backend.
func (b *Backend) Color4(c f32.Vec4) { b.color = c }

// End implements drawgl.Backend. The batch is rasterized immediately.
func (b *Backend) End() {
	n := len(b.pending)
	if left := assemble.Leftover(b.mode, n); left > 0 {
		b.logger.Warn("raster: incomplete primitive dropped", "mode", b.mode, "vertices", left)
	}
	for _, i := range assemble.Points(b.mode, n) {
		b.point(b.pending[i])
	}
	for _, l := range assemble.Lines(b.mode, n) {
		b.line(b.pending[l[0]], b.pending[l[1]])
	}
	for _, t := range assemble.Triangles(b.mode, n) {
		b.triangle(b.pending[t[0]], b.pending[t[1]], b.pending[t[2]])
	}
	b.pending = b.pending[:0]
}

func (b *Backend) project(v f32.Vec3) f32.Vec2 {
	a := b.view
	return f32.Vec2{
		a[0]*v[0] + a[1]*v[1] + a[2],
		a[3]*v[0] + a[4]*v[1] + a[5],
	}
}

func (b *Backend) triangle(v0, v1, v2 vertex) {
	var c f32.Vec4
	for k := range c {
		c[k] = (v0.color[k] + v1.color[k] + v2.color[k]) / 3
	}
	if b.opts.lighting {
		c = shade(c, v0.normal)
	}
	b.fill(c, b.project(v0.pos), b.project(v1.pos), b.project(v2.pos))
}

func (b *Backend) line(v0, v1 vertex) {
	p, q := b.project(v0.pos), b.project(v1.pos)
	dx, dy := q[0]-p[0], q[1]-p[1]
	l := math32.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		b.point(v0)
		return
	}
	hw := b.opts.lineWidth / 2
	nx, ny := -dy/l*hw, dx/l*hw
	b.fill(v0.color,
		f32.Vec2{p[0] + nx, p[1] + ny},
		f32.Vec2{q[0] + nx, q[1] + ny},
		f32.Vec2{q[0] - nx, q[1] - ny},
		f32.Vec2{p[0] - nx, p[1] - ny},
	)
}

func (b *Backend) point(v vertex) {
	p := b.project(v.pos)
	h := b.opts.pointSize / 2
	b.fill(v.color,
		f32.Vec2{p[0] - h, p[1] - h},
		f32.Vec2{p[0] + h, p[1] - h},
		f32.Vec2{p[0] + h, p[1] + h},
		f32.Vec2{p[0] - h, p[1] + h},
	)
}

// fill rasterizes the closed outline pts with color c.
func (b *Backend) fill(c f32.Vec4, pts ...f32.Vec2) {
	size := b.img.Rect.Size()
	b.z.Reset(size.X, size.Y)
	b.z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		b.z.LineTo(p[0], p[1])
	}
	b.z.ClosePath()
	b.z.Draw(b.img, b.img.Rect, image.NewUniform(toNRGBA(c)), image.Point{})
}

// shade scales the RGB of c by the facing ratio of normal n towards +Z.
func shade(c f32.Vec4, n f32.Vec3) f32.Vec4 {
	l := geom.Length(n)
	if l == 0 {
		return c
	}
	k := 0.3 + 0.7*math32.Abs(n[2])/l
	return f32.Vec4{c[0] * k, c[1] * k, c[2] * k, c[3]}
}

func toNRGBA(c f32.Vec4) color.NRGBA {
	return color.NRGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: unit8(c[3])}
}

func unit8(x float32) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Width returns the image width in pixels.
func (b *Backend) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the image height in pixels.
func (b *Backend) Height() int {
	return b.img.Rect.Dy()
}

// WriteTo writes the rendered image as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG saves the rendered image as PNG to a file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
