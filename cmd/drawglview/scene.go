package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strings"

	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/drawgl"
	"github.com/gogpu/drawgl/geom"
)

// Scene is a list of objects drawn in order.
type Scene struct {
	Background Array    `yaml:"background"`
	Objects    []Object `yaml:"objects"`
}

// Object is one draw call. Arrays are nested YAML sequences; their nesting
// selects the color granularity the same way ColorsFromShape does.
type Object struct {
	// Kind is one of lines, triangles, points, polygons or elements.
	Kind     string   `yaml:"kind"`
	Coords   Array    `yaml:"coords"`
	Vertices Array    `yaml:"vertices"`
	Elems    Array    `yaml:"elems"`
	Normals  Array    `yaml:"normals"`
	Colors   Array    `yaml:"colors"`
	Alpha    *float32 `yaml:"alpha"`
	Mode     string   `yaml:"mode"`
}

// Array is a rectangular numeric array decoded from nested sequences.
type Array struct {
	Data  []float32
	Shape []int
}

// UnmarshalYAML implements yaml.Unmarshaler for Array.
func (a *Array) UnmarshalYAML(value *yaml.Node) error {
	var data []float32
	shape, err := flatten(value, &data)
	if err != nil {
		return err
	}
	a.Data, a.Shape = data, shape
	return nil
}

func flatten(n *yaml.Node, out *[]float32) ([]int, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var f float32
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		*out = append(*out, f)
		return nil, nil
	case yaml.SequenceNode:
		var inner []int
		for i, c := range n.Content {
			s, err := flatten(c, out)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				inner = s
			} else if !slices.Equal(s, inner) {
				return nil, fmt.Errorf("line %d: ragged array", c.Line)
			}
		}
		return append([]int{len(n.Content)}, inner...), nil
	case yaml.AliasNode:
		return flatten(n.Alias, out)
	}
	return nil, fmt.Errorf("line %d: expected a number or a sequence", n.Line)
}

// Empty reports whether the array holds no values.
func (a Array) Empty() bool { return len(a.Data) == 0 }

var errShape = errors.New("drawglview: unexpected array shape")

// coords interprets a as elements of points: [n, plex, 3], or [n, 3] for
// single points.
func (a Array) coords() (drawgl.Coords, error) {
	switch {
	case a.Empty():
		return drawgl.NewCoords(nil, 1), nil
	case len(a.Shape) == 2 && a.Shape[1] == 3:
		return drawgl.NewPoints(a.Data), nil
	case len(a.Shape) == 3 && a.Shape[2] == 3:
		return drawgl.NewCoords(a.Data, a.Shape[1]), nil
	}
	return drawgl.Coords{}, fmt.Errorf("%w: coordinates %v", errShape, a.Shape)
}

func (a Array) normals() (drawgl.Normals, error) {
	if a.Empty() {
		return drawgl.Normals{}, nil
	}
	if len(a.Shape) != 2 || a.Shape[1] != 3 {
		return drawgl.Normals{}, fmt.Errorf("%w: normals %v", errShape, a.Shape)
	}
	return drawgl.NewNormals(a.Data), nil
}

func (a Array) elems() (drawgl.Elems, error) {
	if len(a.Shape) != 2 {
		return drawgl.Elems{}, fmt.Errorf("%w: elems %v", errShape, a.Shape)
	}
	idx := make([]int32, len(a.Data))
	for i, v := range a.Data {
		idx[i] = int32(v)
		if float32(idx[i]) != v {
			return drawgl.Elems{}, fmt.Errorf("%w: elems value %v is not an integer", errShape, v)
		}
	}
	return drawgl.NewElems(idx, a.Shape[1]), nil
}

// color returns the array as an opaque color, or def if it is empty.
func (a Array) color(def color.Color) (color.Color, error) {
	if a.Empty() {
		return def, nil
	}
	if len(a.Shape) != 1 || a.Shape[0] != 3 {
		return nil, fmt.Errorf("%w: background %v", errShape, a.Shape)
	}
	c := make([]uint8, 3)
	for i, v := range a.Data {
		c[i] = uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}

var modes = map[string]drawgl.Mode{
	"":          drawgl.ModeAuto,
	"auto":      drawgl.ModeAuto,
	"points":    drawgl.ModePoints,
	"lines":     drawgl.ModeLines,
	"linestrip": drawgl.ModeLineStrip,
	"lineloop":  drawgl.ModeLineLoop,
	"triangles": drawgl.ModeTriangles,
	"quads":     drawgl.ModeQuads,
	"polygon":   drawgl.ModePolygon,
}

func parseMode(s string) (drawgl.Mode, error) {
	m, ok := modes[strings.ToLower(s)]
	if !ok {
		return drawgl.ModeAuto, fmt.Errorf("drawglview: unknown mode %q", s)
	}
	return m, nil
}

// LoadScene reads a scene from a YAML file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes a scene from YAML.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &s, nil
}

// Bounds returns the bounding box of every position in the scene.
func (s *Scene) Bounds() (lo, hi f32.Vec3) {
	var all []float32
	for _, o := range s.Objects {
		all = append(all, o.Coords.Data...)
		all = append(all, o.Vertices.Data...)
	}
	return geom.Bounds(all)
}

// Draw draws every object with d, stopping at the first error.
func (s *Scene) Draw(d *drawgl.Drawer) error {
	for i, o := range s.Objects {
		if err := o.Draw(d); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, o.Kind, err)
		}
	}
	return nil
}

// Draw issues the draw call described by o.
func (o Object) Draw(d *drawgl.Drawer) error {
	mode, err := parseMode(o.Mode)
	if err != nil {
		return err
	}
	normals, err := o.Normals.normals()
	if err != nil {
		return err
	}
	colors, err := drawgl.ColorsFromShape(o.Colors.Data, o.Colors.Shape...)
	if err != nil {
		return err
	}
	alpha := float32(1)
	if o.Alpha != nil {
		alpha = *o.Alpha
	}

	if o.Kind == "elements" {
		verts := drawgl.NewPoints(o.Vertices.Data)
		elems, err := o.Elems.elems()
		if err != nil {
			return err
		}
		if mode == drawgl.ModeAuto && elems.Plex() == 3 {
			return d.DrawTriangleElements(verts, elems, normals, colors, alpha)
		}
		return d.DrawPolygonElements(verts, elems, normals, colors, alpha, mode)
	}

	coords, err := o.Coords.coords()
	if err != nil {
		return err
	}
	switch o.Kind {
	case "lines":
		return d.DrawLines(coords, colors)
	case "triangles":
		return d.DrawTriangles(coords, normals, colors, alpha)
	case "points":
		return d.DrawPoints(coords, colors, alpha)
	case "polygons":
		return d.DrawPolygons(coords, normals, colors, alpha, mode)
	}
	return fmt.Errorf("drawglview: unknown object kind %q", o.Kind)
}
